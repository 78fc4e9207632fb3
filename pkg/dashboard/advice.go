package dashboard

import "strings"

const (
	tipOverspending      = "You're spending more than you earn this month—tighten categories or increase income."
	tipHighUtilization   = "Credit utilization is above 30%; paying before statement date may help your score."
	tipSubscriptionAudit = "Audit subscriptions—cancel anything you don't use to reduce recurring spend."
)

// subscriptionAuditThreshold is the subscription count at which the audit
// tip appears.
const subscriptionAuditThreshold = 3

// BuildTips derives the advisory tips for the overview. Nothing is
// persisted; the same inputs always produce the same tips, in a fixed
// order: overspending, utilization, subscription count, over-budget
// categories.
func BuildTips(summary MonthSummary, credit CreditOverview, budgets []BudgetStatus, subscriptionCount int) []string {
	tips := make([]string, 0, 4)
	if summary.Expense.GreaterThan(summary.Income) && summary.Income.IsPositive() {
		tips = append(tips, tipOverspending)
	}
	if credit.Warning {
		tips = append(tips, tipHighUtilization)
	}
	if subscriptionCount >= subscriptionAuditThreshold {
		tips = append(tips, tipSubscriptionAudit)
	}
	var over []string
	for _, status := range budgets {
		if status.Over {
			over = append(over, status.Category)
		}
	}
	if len(over) > 0 {
		tips = append(tips, "Over budget in: "+strings.Join(over, ", ")+". Consider moving discretionary spend to next month.")
	}
	return tips
}
