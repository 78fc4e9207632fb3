package budget

import (
	"context"
	"errors"
)

var (
	ErrInvalidCategory = errors.New("unknown budget category")
	ErrNegativeBudget  = errors.New("monthly budget must not be negative")
)

type BudgetService interface {
	GetAll(ctx context.Context) ([]Budget, error)
	Set(ctx context.Context, budget Budget) (Budget, error)
	Delete(ctx context.Context, category string) (bool, error)
}

type BudgetServiceImpl struct {
	repo BudgetRepo
}

func NewBudgetService(repo BudgetRepo) *BudgetServiceImpl {
	return &BudgetServiceImpl{repo: repo}
}

func (s *BudgetServiceImpl) GetAll(ctx context.Context) ([]Budget, error) {
	return s.repo.GetAll(ctx)
}

func (s *BudgetServiceImpl) Set(ctx context.Context, budget Budget) (Budget, error) {
	if !ValidCategory(budget.Category) {
		return Budget{}, ErrInvalidCategory
	}
	if budget.MonthlyBudget.IsNegative() {
		return Budget{}, ErrNegativeBudget
	}
	if err := s.repo.Upsert(ctx, budget); err != nil {
		return Budget{}, err
	}
	return budget, nil
}

func (s *BudgetServiceImpl) Delete(ctx context.Context, category string) (bool, error) {
	return s.repo.Delete(ctx, category)
}
