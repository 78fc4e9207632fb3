package posting

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/mnurse06/finance-tracker/internal/utils"
	"github.com/mnurse06/finance-tracker/pkg/subscription"
	"github.com/mnurse06/finance-tracker/pkg/transaction"
)

// chargeDayCap is the latest day of month a posted charge is dated with,
// so the posting date is valid in February and other short months.
const chargeDayCap = 28

// Poster turns subscriptions due in the current month into expense
// transactions. Running it again in the same month posts nothing: each
// charge carries a provenance tag and tagged months are skipped. A month
// in which it never ran is simply missed; there is no catch-up posting.
type Poster interface {
	PostDue(ctx context.Context) (int, error)
}

type PosterImpl struct {
	subscriptions subscription.SubscriptionService
	transactions  transaction.TransactionService
	clock         utils.Clock
}

func NewPoster(
	subscriptions subscription.SubscriptionService,
	transactions transaction.TransactionService,
	clock utils.Clock,
) *PosterImpl {
	return &PosterImpl{
		subscriptions: subscriptions,
		transactions:  transactions,
		clock:         clock,
	}
}

func (p *PosterImpl) PostDue(ctx context.Context) (int, error) {
	now := p.clock.Now()
	year, month := now.Year(), now.Month()

	due, err := p.subscriptions.UpcomingInMonth(ctx, year, month)
	if err != nil {
		return 0, err
	}
	if len(due) == 0 {
		return 0, nil
	}

	existing, err := p.transactions.GetAll(ctx)
	if err != nil {
		return 0, err
	}

	day := now.Day()
	if day > chargeDayCap {
		day = chargeDayCap
	}
	date := utils.FormatDate(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))

	charges := make([]transaction.Transaction, 0, len(due))
	for _, sub := range due {
		tag := transaction.NewSubscriptionTag(sub.Name, year, month)
		if notePosted(existing, tag) {
			log.Debugf("Subscription %q already posted for %d-%02d", sub.Name, year, int(month))
			continue
		}
		charges = append(charges, transaction.Transaction{
			Date:     date,
			Amount:   sub.Amount.Abs().Neg(),
			Category: sub.Category,
			Note:     fmt.Sprintf("%s %s", sub.Name, tag),
		})
	}
	if len(charges) == 0 {
		return 0, nil
	}

	if err := p.transactions.CreateAll(ctx, charges); err != nil {
		return 0, err
	}
	log.Infof("Posted %d subscription charge(s) for %d-%02d", len(charges), year, int(month))
	return len(charges), nil
}

func notePosted(transactions []transaction.Transaction, tag transaction.Tag) bool {
	for _, tx := range transactions {
		if tag.MatchesNote(tx.Note) {
			return true
		}
	}
	return false
}
