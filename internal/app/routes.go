package app

import (
	"github.com/gorilla/mux"

	"github.com/mnurse06/finance-tracker/internal/config"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Transactions
	r.HandleFunc("/api/transactions", deps.TransactionHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/transactions", deps.TransactionHandler.Create).Methods("POST")
	r.HandleFunc("/api/transactions/{transactionId}", deps.TransactionHandler.Update).Methods("PUT")
	r.HandleFunc("/api/transactions/{transactionId}", deps.TransactionHandler.Delete).Methods("DELETE")

	// Subscriptions
	r.HandleFunc("/api/subscriptions", deps.SubscriptionHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/subscriptions", deps.SubscriptionHandler.Create).Methods("POST")
	r.HandleFunc("/api/subscriptions/upcoming", deps.SubscriptionHandler.Upcoming).Methods("GET")
	r.HandleFunc("/api/subscriptions/post-due", deps.PostingHandler.PostDue).Methods("POST")
	r.HandleFunc("/api/subscriptions/{subscriptionId}", deps.SubscriptionHandler.Update).Methods("PUT")
	r.HandleFunc("/api/subscriptions/{subscriptionId}", deps.SubscriptionHandler.Delete).Methods("DELETE")

	// Cards
	r.HandleFunc("/api/cards", deps.CardHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/cards", deps.CardHandler.Create).Methods("POST")
	r.HandleFunc("/api/cards/{cardId}", deps.CardHandler.Update).Methods("PUT")
	r.HandleFunc("/api/cards/{cardId}", deps.CardHandler.Delete).Methods("DELETE")
	r.HandleFunc("/api/cards/{cardId}/payment", deps.CardHandler.Pay).Methods("POST")

	// Goals
	r.HandleFunc("/api/goals", deps.GoalHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/goals", deps.GoalHandler.Create).Methods("POST")
	r.HandleFunc("/api/goals/{goalId}", deps.GoalHandler.Update).Methods("PUT")
	r.HandleFunc("/api/goals/{goalId}", deps.GoalHandler.Delete).Methods("DELETE")

	// Budgets
	r.HandleFunc("/api/budgets", deps.BudgetHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/budgets/{category}", deps.BudgetHandler.Set).Methods("PUT")
	r.HandleFunc("/api/budgets/{category}", deps.BudgetHandler.Delete).Methods("DELETE")

	// Dashboard
	r.HandleFunc("/api/dashboard", deps.DashboardHandler.Get).Methods("GET")

	// Export
	r.HandleFunc("/api/export", deps.ExportHandler.List).Methods("GET")
	r.HandleFunc("/api/export/{table}", deps.ExportHandler.Download).Methods("GET")
}
