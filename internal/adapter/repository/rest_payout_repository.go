package repository

import (
	"context"
	"encoding/json"

	"earnhub/internal/domain/entity"
	"earnhub/internal/domain/repository"
	"earnhub/internal/infrastructure/platform"
	"earnhub/pkg/errors"
)

type restPayoutRepository struct {
	client *platform.Client
}

func NewRestPayoutRepository(client *platform.Client) repository.PayoutRepository {
	return &restPayoutRepository{
		client: client,
	}
}

// History tolerates both shapes the endpoint has been seen returning: a
// bare payout list and an object wrapping it under "payouts".
func (r *restPayoutRepository) History(ctx context.Context) ([]*entity.Payout, error) {
	var raw json.RawMessage
	if err := r.client.GetJSON(ctx, "/api/payout/history", &raw); err != nil {
		return nil, err
	}

	var payouts []*entity.Payout
	if err := json.Unmarshal(raw, &payouts); err == nil {
		return payouts, nil
	}

	var wrapped struct {
		Payouts []*entity.Payout `json:"payouts"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, errors.Transport("Invalid response from the platform API", err)
	}
	return wrapped.Payouts, nil
}

func (r *restPayoutRepository) Request(ctx context.Context, amount float64, method string) (*entity.Payout, error) {
	req := map[string]interface{}{
		"amount": amount,
		"method": method,
	}

	var created entity.Payout
	if err := r.client.PostJSON(ctx, "/api/payout/request", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
