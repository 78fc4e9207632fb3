package transaction

import (
	"context"
	"time"
)

type TransactionService interface {
	GetAll(ctx context.Context) ([]Transaction, error)
	GetForMonth(ctx context.Context, year int, month time.Month) ([]Transaction, error)
	Create(ctx context.Context, transaction Transaction) (Transaction, error)
	CreateAll(ctx context.Context, transactions []Transaction) error
	Update(ctx context.Context, transaction Transaction) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type TransactionServiceImpl struct {
	repo TransactionRepo
}

func NewTransactionService(repo TransactionRepo) *TransactionServiceImpl {
	return &TransactionServiceImpl{repo: repo}
}

func (s *TransactionServiceImpl) GetAll(ctx context.Context) ([]Transaction, error) {
	return s.repo.GetAll(ctx)
}

func (s *TransactionServiceImpl) GetForMonth(ctx context.Context, year int, month time.Month) ([]Transaction, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	matching := make([]Transaction, 0, len(all))
	for _, transaction := range all {
		if transaction.InMonth(year, month) {
			matching = append(matching, transaction)
		}
	}
	return matching, nil
}

func (s *TransactionServiceImpl) Create(ctx context.Context, transaction Transaction) (Transaction, error) {
	id, err := s.repo.Store(ctx, transaction)
	if err != nil {
		return Transaction{}, err
	}
	transaction.ID = id
	return transaction, nil
}

func (s *TransactionServiceImpl) CreateAll(ctx context.Context, transactions []Transaction) error {
	return s.repo.StoreAll(ctx, transactions)
}

func (s *TransactionServiceImpl) Update(ctx context.Context, transaction Transaction) (bool, error) {
	return s.repo.Update(ctx, transaction)
}

func (s *TransactionServiceImpl) Delete(ctx context.Context, id int) (bool, error) {
	return s.repo.Delete(ctx, id)
}
