package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"earnhub/internal/domain/entity"
	"earnhub/pkg/errors"
)

type fakePayoutRepo struct {
	history []*entity.Payout
	err     error
	calls   int
}

func (f *fakePayoutRepo) History(context.Context) ([]*entity.Payout, error) {
	f.calls++
	return f.history, f.err
}

func (f *fakePayoutRepo) Request(_ context.Context, amount float64, method string) (*entity.Payout, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &entity.Payout{ID: "p1", Amount: amount, Method: method, Status: entity.PayoutStatusPending}, nil
}

type fakeFundRepo struct {
	calls int
	err   error
}

func (f *fakeFundRepo) Deposit(_ context.Context, amount float64, method, reference string) (*entity.Transaction, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &entity.Transaction{ID: "d1", Type: entity.TransactionTypeDeposit, Amount: amount}, nil
}

func TestPayoutStatsScenario(t *testing.T) {
	requestedAt, _ := time.Parse("2006-01-02", "2024-01-01")
	payoutRepo := &fakePayoutRepo{history: []*entity.Payout{
		{Amount: 25, Status: entity.PayoutStatusCompleted, Method: "usdt", RequestedAt: requestedAt},
	}}
	uc := NewFundUseCase(payoutRepo, &fakeFundRepo{}, entity.Identity{ID: "u1", Role: entity.RoleUser})

	_, err := uc.LoadPayoutHistory(context.Background())
	assert.NoError(t, err)

	stats := uc.PayoutStats()
	assert.Equal(t, 1, stats.Completed)
	assert.Equal(t, 0, stats.Pending)
	assert.Equal(t, 25.0, stats.TotalPaid)
}

func TestRequestPayoutValidatesBeforeNetwork(t *testing.T) {
	payoutRepo := &fakePayoutRepo{}
	uc := NewFundUseCase(payoutRepo, &fakeFundRepo{}, entity.Identity{ID: "u1", Role: entity.RoleUser})

	_, err := uc.RequestPayout(context.Background(), 0, "usdt")
	assert.True(t, errors.Is(err, "VALIDATION_ERROR"))

	_, err = uc.RequestPayout(context.Background(), 10, "venmo")
	assert.True(t, errors.Is(err, "VALIDATION_ERROR"))

	assert.Zero(t, payoutRepo.calls)
}

func TestRequestPayoutAppends(t *testing.T) {
	payoutRepo := &fakePayoutRepo{}
	uc := NewFundUseCase(payoutRepo, &fakeFundRepo{}, entity.Identity{ID: "u1", Role: entity.RoleUser})

	created, err := uc.RequestPayout(context.Background(), 50, "paypal")
	assert.NoError(t, err)
	assert.Equal(t, "p1", created.ID)
	assert.Len(t, uc.Payouts(), 1)
}

func TestRequestPayoutFailureLeavesMirrorUnchanged(t *testing.T) {
	payoutRepo := &fakePayoutRepo{err: errors.BadRequest("Insufficient balance", nil)}
	uc := NewFundUseCase(payoutRepo, &fakeFundRepo{}, entity.Identity{ID: "u1", Role: entity.RoleUser})

	_, err := uc.RequestPayout(context.Background(), 50, "paypal")
	assert.Error(t, err)
	assert.Empty(t, uc.Payouts())
}

func TestDepositValidation(t *testing.T) {
	fundRepo := &fakeFundRepo{}
	uc := NewFundUseCase(&fakePayoutRepo{}, fundRepo, entity.Identity{ID: "u1", Role: entity.RoleUser})

	_, err := uc.Deposit(context.Background(), -5, "usdt", "")
	assert.True(t, errors.Is(err, "VALIDATION_ERROR"))
	assert.Zero(t, fundRepo.calls)

	tx, err := uc.Deposit(context.Background(), 100, "usdt", "0xabc")
	assert.NoError(t, err)
	assert.Equal(t, entity.TransactionTypeDeposit, tx.Type)
}
