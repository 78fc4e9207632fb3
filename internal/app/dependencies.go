package app

import (
	"github.com/mnurse06/finance-tracker/internal/config"
	"github.com/mnurse06/finance-tracker/internal/tablestore"
	"github.com/mnurse06/finance-tracker/internal/utils"
	"github.com/mnurse06/finance-tracker/pkg/budget"
	"github.com/mnurse06/finance-tracker/pkg/card"
	"github.com/mnurse06/finance-tracker/pkg/dashboard"
	"github.com/mnurse06/finance-tracker/pkg/export"
	"github.com/mnurse06/finance-tracker/pkg/goal"
	"github.com/mnurse06/finance-tracker/pkg/posting"
	"github.com/mnurse06/finance-tracker/pkg/subscription"
	"github.com/mnurse06/finance-tracker/pkg/transaction"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	Store tablestore.Store

	TransactionRepo    transaction.TransactionRepo
	TransactionService transaction.TransactionService
	TransactionHandler *transaction.TransactionHandler

	SubscriptionRepo    subscription.SubscriptionRepo
	SubscriptionService subscription.SubscriptionService
	SubscriptionHandler *subscription.SubscriptionHandler

	CardRepo    card.CardRepo
	CardService card.CardService
	CardHandler *card.CardHandler

	GoalRepo    goal.GoalRepo
	GoalService goal.GoalService
	GoalHandler *goal.GoalHandler

	BudgetRepo    budget.BudgetRepo
	BudgetService budget.BudgetService
	BudgetHandler *budget.BudgetHandler

	Poster         posting.Poster
	PostingHandler *posting.PostingHandler

	DashboardService dashboard.DashboardService
	DashboardHandler *dashboard.DashboardHandler

	ExportService export.ExportService
	ExportHandler *export.ExportHandler

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(store tablestore.Store, cfg config.Application) *Dependencies {
	deps := &Dependencies{Store: store}

	deps.Clock = &utils.SystemClock{}

	deps.TransactionRepo = transaction.NewTransactionRepo(store)
	deps.TransactionService = transaction.NewTransactionService(deps.TransactionRepo)
	deps.TransactionHandler = transaction.NewTransactionHandler(deps.TransactionService)

	deps.SubscriptionRepo = subscription.NewSubscriptionRepo(store)
	deps.SubscriptionService = subscription.NewSubscriptionService(deps.SubscriptionRepo)
	deps.SubscriptionHandler = subscription.NewSubscriptionHandler(deps.SubscriptionService, deps.Clock)

	deps.CardRepo = card.NewCardRepo(store)
	deps.CardService = card.NewCardService(deps.CardRepo, deps.TransactionService, deps.Clock)
	deps.CardHandler = card.NewCardHandler(deps.CardService)

	deps.GoalRepo = goal.NewGoalRepo(store)
	deps.GoalService = goal.NewGoalService(deps.GoalRepo)
	deps.GoalHandler = goal.NewGoalHandler(deps.GoalService)

	deps.BudgetRepo = budget.NewBudgetRepo(store)
	deps.BudgetService = budget.NewBudgetService(deps.BudgetRepo)
	deps.BudgetHandler = budget.NewBudgetHandler(deps.BudgetService)

	deps.Poster = posting.NewPoster(deps.SubscriptionService, deps.TransactionService, deps.Clock)
	deps.PostingHandler = posting.NewPostingHandler(deps.Poster)

	deps.DashboardService = dashboard.NewDashboardService(
		deps.TransactionService,
		deps.SubscriptionService,
		deps.CardService,
		deps.GoalService,
		deps.BudgetService,
	)
	deps.DashboardHandler = dashboard.NewDashboardHandler(deps.DashboardService, deps.Clock)

	deps.ExportService = export.NewExportService(store)
	deps.ExportHandler = export.NewExportHandler(deps.ExportService)

	return deps
}
