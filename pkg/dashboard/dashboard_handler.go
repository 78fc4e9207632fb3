package dashboard

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/mnurse06/finance-tracker/internal/utils"
)

var (
	errInvalidYear  = errors.New("year must be an integer")
	errInvalidMonth = errors.New("month must be an integer between 1 and 12")
)

type DashboardHandler struct {
	service DashboardService
	clock   utils.Clock
}

func NewDashboardHandler(service DashboardService, clock utils.Clock) *DashboardHandler {
	return &DashboardHandler{service: service, clock: clock}
}

type OverviewDTO struct {
	Year           int                `json:"year"`
	Month          int                `json:"month"`
	Income         string             `json:"income"`
	Expense        string             `json:"expense"`
	Net            string             `json:"net"`
	CategoryTotals []CategoryTotalDTO `json:"categoryTotals"`
	Budgets        []BudgetStatusDTO  `json:"budgets"`
	Credit         CreditOverviewDTO  `json:"credit"`
	Goals          []GoalProgressDTO  `json:"goals"`
	Tips           []string           `json:"tips"`
}

type CategoryTotalDTO struct {
	Category string `json:"category"`
	Total    string `json:"total"`
}

type BudgetStatusDTO struct {
	Category string  `json:"category"`
	Limit    string  `json:"limit"`
	Spent    string  `json:"spent"`
	Pct      float64 `json:"pct"`
	Over     bool    `json:"over"`
	Overage  string  `json:"overage"`
}

type CreditOverviewDTO struct {
	Cards        []CardUtilizationDTO `json:"cards"`
	TotalLimit   string               `json:"totalLimit"`
	TotalBalance string               `json:"totalBalance"`
	Utilization  float64              `json:"utilization"`
	Warning      bool                 `json:"warning"`
}

type CardUtilizationDTO struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Limit       string  `json:"limit"`
	Balance     string  `json:"balance"`
	Utilization float64 `json:"utilization"`
}

type GoalProgressDTO struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	TargetAmount string  `json:"targetAmount"`
	CurrentSaved string  `json:"currentSaved"`
	Progress     float64 `json:"progress"`
}

// Get serves the overview for the requested month, defaulting to the
// current one.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	year, month, err := monthFromQuery(r, h.clock)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	overview, err := h.service.Overview(r.Context(), year, month)
	if err != nil {
		log.Errorf("Error building dashboard overview: %v", err)
		http.Error(w, "Failed to build dashboard overview", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(OverviewToDTO(overview)); err != nil {
		log.Errorf("Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

func monthFromQuery(r *http.Request, clock utils.Clock) (int, time.Month, error) {
	now := clock.Now()
	year, month := now.Year(), now.Month()

	if value := r.URL.Query().Get("year"); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, 0, errInvalidYear
		}
		year = parsed
	}
	if value := r.URL.Query().Get("month"); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed < 1 || parsed > 12 {
			return 0, 0, errInvalidMonth
		}
		month = time.Month(parsed)
	}
	return year, month, nil
}

func OverviewToDTO(o Overview) OverviewDTO {
	categoryTotals := make([]CategoryTotalDTO, 0, len(o.Summary.CategoryTotals))
	for _, t := range o.Summary.CategoryTotals {
		categoryTotals = append(categoryTotals, CategoryTotalDTO{Category: t.Category, Total: t.Total.String()})
	}
	budgets := make([]BudgetStatusDTO, 0, len(o.Budgets))
	for _, b := range o.Budgets {
		budgets = append(budgets, BudgetStatusDTO{
			Category: b.Category,
			Limit:    b.Limit.String(),
			Spent:    b.Spent.String(),
			Pct:      b.Pct.InexactFloat64(),
			Over:     b.Over,
			Overage:  b.Overage.String(),
		})
	}
	cards := make([]CardUtilizationDTO, 0, len(o.Credit.Cards))
	for _, c := range o.Credit.Cards {
		cards = append(cards, CardUtilizationDTO{
			ID:          c.ID,
			Name:        c.Name,
			Limit:       c.Limit.String(),
			Balance:     c.Balance.String(),
			Utilization: c.Utilization.InexactFloat64(),
		})
	}
	goals := make([]GoalProgressDTO, 0, len(o.Goals))
	for _, g := range o.Goals {
		goals = append(goals, GoalProgressDTO{
			ID:           g.ID,
			Name:         g.Name,
			TargetAmount: g.TargetAmount.String(),
			CurrentSaved: g.CurrentSaved.String(),
			Progress:     g.Progress.InexactFloat64(),
		})
	}
	credit := CreditOverviewDTO{
		Cards:        cards,
		TotalLimit:   o.Credit.TotalLimit.String(),
		TotalBalance: o.Credit.TotalBalance.String(),
		Utilization:  o.Credit.Utilization.InexactFloat64(),
		Warning:      o.Credit.Warning,
	}
	tips := o.Tips
	if tips == nil {
		tips = []string{}
	}
	return OverviewDTO{
		Year:           o.Year,
		Month:          int(o.Month),
		Income:         o.Summary.Income.String(),
		Expense:        o.Summary.Expense.String(),
		Net:            o.Summary.Net.String(),
		CategoryTotals: categoryTotals,
		Budgets:        budgets,
		Credit:         credit,
		Goals:          goals,
		Tips:           tips,
	}
}
