package app

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"github.com/mnurse06/finance-tracker/pkg/posting"
)

// Scheduler posts due subscription charges on a cron schedule. Posting is
// idempotent per month, so an aggressive schedule only costs extra reads.
type Scheduler struct {
	cron *cron.Cron
}

func NewScheduler(schedule string, poster posting.Poster) (*Scheduler, error) {
	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		posted, err := poster.PostDue(context.Background())
		if err != nil {
			log.Errorf("Scheduled subscription posting failed: %v", err)
			return
		}
		if posted > 0 {
			log.Infof("Scheduled posting created %d transaction(s)", posted)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid posting schedule %q: %w", schedule, err)
	}
	log.Infof("Subscription posting scheduled: %s", schedule)
	return &Scheduler{cron: c}, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts scheduling; a run already in progress finishes on its own.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}
