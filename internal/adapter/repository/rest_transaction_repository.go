package repository

import (
	"context"

	"earnhub/internal/domain/entity"
	"earnhub/internal/domain/repository"
	"earnhub/internal/infrastructure/platform"
)

type restTransactionRepository struct {
	client *platform.Client
}

func NewRestTransactionRepository(client *platform.Client) repository.TransactionRepository {
	return &restTransactionRepository{
		client: client,
	}
}

func (r *restTransactionRepository) ListByUser(ctx context.Context) ([]*entity.Transaction, error) {
	var transactions []*entity.Transaction
	if err := r.client.GetJSON(ctx, "/api/transactions/user", &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

type restFundRepository struct {
	client *platform.Client
}

func NewRestFundRepository(client *platform.Client) repository.FundRepository {
	return &restFundRepository{
		client: client,
	}
}

func (r *restFundRepository) Deposit(ctx context.Context, amount float64, method, reference string) (*entity.Transaction, error) {
	req := map[string]interface{}{
		"amount": amount,
		"method": method,
	}
	if reference != "" {
		req["reference"] = reference
	}

	var created entity.Transaction
	if err := r.client.PostJSON(ctx, "/api/fund/deposit", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
