package subscription

import (
	"context"
	"time"
)

type SubscriptionService interface {
	GetAll(ctx context.Context) ([]Subscription, error)
	// UpcomingInMonth returns subscriptions whose next charge date falls in
	// the given month.
	UpcomingInMonth(ctx context.Context, year int, month time.Month) ([]Subscription, error)
	Create(ctx context.Context, subscription Subscription) (Subscription, error)
	Update(ctx context.Context, subscription Subscription) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type SubscriptionServiceImpl struct {
	repo SubscriptionRepo
}

func NewSubscriptionService(repo SubscriptionRepo) *SubscriptionServiceImpl {
	return &SubscriptionServiceImpl{repo: repo}
}

func (s *SubscriptionServiceImpl) GetAll(ctx context.Context) ([]Subscription, error) {
	return s.repo.GetAll(ctx)
}

func (s *SubscriptionServiceImpl) UpcomingInMonth(ctx context.Context, year int, month time.Month) ([]Subscription, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	upcoming := make([]Subscription, 0, len(all))
	for _, subscription := range all {
		if subscription.ChargeInMonth(year, month) {
			upcoming = append(upcoming, subscription)
		}
	}
	return upcoming, nil
}

func (s *SubscriptionServiceImpl) Create(ctx context.Context, subscription Subscription) (Subscription, error) {
	id, err := s.repo.Store(ctx, subscription)
	if err != nil {
		return Subscription{}, err
	}
	subscription.ID = id
	return subscription, nil
}

func (s *SubscriptionServiceImpl) Update(ctx context.Context, subscription Subscription) (bool, error) {
	return s.repo.Update(ctx, subscription)
}

func (s *SubscriptionServiceImpl) Delete(ctx context.Context, id int) (bool, error) {
	return s.repo.Delete(ctx, id)
}
