package goal

import (
	"context"
)

type GoalService interface {
	GetAll(ctx context.Context) ([]Goal, error)
	Create(ctx context.Context, goal Goal) (Goal, error)
	Update(ctx context.Context, goal Goal) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type GoalServiceImpl struct {
	repo GoalRepo
}

func NewGoalService(repo GoalRepo) *GoalServiceImpl {
	return &GoalServiceImpl{repo: repo}
}

func (s *GoalServiceImpl) GetAll(ctx context.Context) ([]Goal, error) {
	return s.repo.GetAll(ctx)
}

func (s *GoalServiceImpl) Create(ctx context.Context, goal Goal) (Goal, error) {
	id, err := s.repo.Store(ctx, goal)
	if err != nil {
		return Goal{}, err
	}
	goal.ID = id
	return goal, nil
}

func (s *GoalServiceImpl) Update(ctx context.Context, goal Goal) (bool, error) {
	return s.repo.Update(ctx, goal)
}

func (s *GoalServiceImpl) Delete(ctx context.Context, id int) (bool, error) {
	return s.repo.Delete(ctx, id)
}
