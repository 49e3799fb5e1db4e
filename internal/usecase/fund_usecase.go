package usecase

import (
	"context"
	"sync"

	"earnhub/internal/domain/entity"
	"earnhub/internal/domain/repository"
	"earnhub/pkg/errors"
)

var payoutMethods = map[string]bool{
	"bank":   true,
	"paypal": true,
	"stripe": true,
	"usdt":   true,
}

// FundUseCase mirrors the wallet side of the session: payout history and
// requests, plus deposit submissions.
type FundUseCase struct {
	payoutRepo repository.PayoutRepository
	fundRepo   repository.FundRepository
	user       entity.Identity

	mu      sync.Mutex
	payouts []*entity.Payout
	guard   *submitGuard
}

func NewFundUseCase(payoutRepo repository.PayoutRepository, fundRepo repository.FundRepository, user entity.Identity) *FundUseCase {
	return &FundUseCase{
		payoutRepo: payoutRepo,
		fundRepo:   fundRepo,
		user:       user,
		guard:      newSubmitGuard(),
	}
}

func (uc *FundUseCase) LoadPayoutHistory(ctx context.Context) ([]*entity.Payout, error) {
	payouts, err := uc.payoutRepo.History(ctx)
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	uc.payouts = payouts
	uc.mu.Unlock()
	return uc.Payouts(), nil
}

func (uc *FundUseCase) Payouts() []*entity.Payout {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	snapshot := make([]*entity.Payout, len(uc.payouts))
	copy(snapshot, uc.payouts)
	return snapshot
}

// PayoutStats derives the history page counters from the mirror.
func (uc *FundUseCase) PayoutStats() entity.PayoutStats {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	values := make([]entity.Payout, len(uc.payouts))
	for i, p := range uc.payouts {
		values[i] = *p
	}
	return entity.ComputePayoutStats(values)
}

func (uc *FundUseCase) RequestPayout(ctx context.Context, amount float64, method string) (*entity.Payout, error) {
	if amount <= 0 {
		return nil, errors.Validation("Amount must be greater than zero")
	}
	if !payoutMethods[method] {
		return nil, errors.Validation("Method must be one of: bank, paypal, stripe, usdt")
	}

	if !uc.guard.begin("request-payout") {
		return nil, errors.Conflict("A payout request is already in progress")
	}
	defer uc.guard.end("request-payout")

	created, err := uc.payoutRepo.Request(ctx, amount, method)
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	uc.payouts = append(uc.payouts, created)
	uc.mu.Unlock()
	return created, nil
}

// Deposit submits a wallet funding request. Verification happens remotely;
// the deposit shows up in the transactions mirror once the server records it.
func (uc *FundUseCase) Deposit(ctx context.Context, amount float64, method, reference string) (*entity.Transaction, error) {
	if amount <= 0 {
		return nil, errors.Validation("Amount must be greater than zero")
	}
	if !payoutMethods[method] {
		return nil, errors.Validation("Method must be one of: bank, paypal, stripe, usdt")
	}

	if !uc.guard.begin("deposit") {
		return nil, errors.Conflict("A deposit is already in progress")
	}
	defer uc.guard.end("deposit")

	return uc.fundRepo.Deposit(ctx, amount, method, reference)
}
