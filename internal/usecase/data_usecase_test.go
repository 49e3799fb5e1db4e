package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"earnhub/internal/domain/entity"
	"earnhub/pkg/errors"
)

type fakeTicketRepo struct {
	calls   int
	created *entity.SupportTicket
	err     error
}

func (f *fakeTicketRepo) ListByUser(context.Context) ([]*entity.SupportTicket, error) {
	f.calls++
	return nil, f.err
}

func (f *fakeTicketRepo) Create(_ context.Context, subject, message string) (*entity.SupportTicket, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	f.created = &entity.SupportTicket{ID: "t1", Subject: subject, Message: message, Status: entity.TicketStatusOpen}
	return f.created, nil
}

func (f *fakeTicketRepo) Close(_ context.Context, id string) (*entity.SupportTicket, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &entity.SupportTicket{ID: id, Status: entity.TicketStatusClosed}, nil
}

type fakeAdRepo struct {
	calls int
	err   error
	next  *entity.Ad
}

func (f *fakeAdRepo) ListByUser(context.Context) ([]*entity.Ad, error) { f.calls++; return nil, f.err }
func (f *fakeAdRepo) ListAll(context.Context) ([]*entity.Ad, error)   { f.calls++; return nil, f.err }

func (f *fakeAdRepo) Create(_ context.Context, ad *entity.Ad) (*entity.Ad, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	created := *ad
	created.ID = "ad-1"
	created.Status = entity.AdStatusPending
	f.next = &created
	return &created, nil
}

func (f *fakeAdRepo) UpdateStatus(_ context.Context, id, status string) (*entity.Ad, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &entity.Ad{ID: id, Status: status}, nil
}

func (f *fakeAdRepo) Delete(context.Context, string) error { f.calls++; return f.err }

type fakeTxRepo struct {
	transactions []*entity.Transaction
}

func (f *fakeTxRepo) ListByUser(context.Context) ([]*entity.Transaction, error) {
	return f.transactions, nil
}

func newDataUseCase(adRepo *fakeAdRepo, txRepo *fakeTxRepo, ticketRepo *fakeTicketRepo) *DataUseCase {
	if adRepo == nil {
		adRepo = &fakeAdRepo{}
	}
	if txRepo == nil {
		txRepo = &fakeTxRepo{}
	}
	if ticketRepo == nil {
		ticketRepo = &fakeTicketRepo{}
	}
	return NewDataUseCase(adRepo, txRepo, ticketRepo, nil, entity.Identity{ID: "u1", FullName: "Jane Doe", Role: entity.RoleUser})
}

func TestCreateTicketEmptySubjectSkipsNetwork(t *testing.T) {
	ticketRepo := &fakeTicketRepo{}
	uc := newDataUseCase(nil, nil, ticketRepo)

	_, err := uc.CreateTicket(context.Background(), "   ", "help me")
	assert.True(t, errors.Is(err, "VALIDATION_ERROR"))
	assert.Zero(t, ticketRepo.calls)
	assert.Empty(t, uc.Tickets())
}

func TestCreateTicketAppendsServerRecord(t *testing.T) {
	ticketRepo := &fakeTicketRepo{}
	uc := newDataUseCase(nil, nil, ticketRepo)

	created, err := uc.CreateTicket(context.Background(), "Broken payout", "Details")
	assert.NoError(t, err)
	assert.Equal(t, "t1", created.ID)

	tickets := uc.Tickets()
	if assert.Len(t, tickets, 1) {
		assert.Equal(t, "t1", tickets[0].ID)
	}
}

func TestPostAdSuccessAppendsExactlyOne(t *testing.T) {
	adRepo := &fakeAdRepo{}
	uc := newDataUseCase(adRepo, nil, nil)

	created, err := uc.PostAd(context.Background(), "My ad", "Buy things", "")
	assert.NoError(t, err)
	assert.Equal(t, "ad-1", created.ID)
	assert.Equal(t, entity.AdStatusPending, created.Status)
	assert.Equal(t, "u1", created.UserID)

	ads := uc.Ads()
	if assert.Len(t, ads, 1) {
		assert.Equal(t, "ad-1", ads[0].ID)
	}
}

func TestPostAdFailureLeavesMirrorUnchanged(t *testing.T) {
	adRepo := &fakeAdRepo{err: errors.BadRequest("Ad rejected", nil)}
	uc := newDataUseCase(adRepo, nil, nil)

	_, err := uc.PostAd(context.Background(), "My ad", "Buy things", "")
	assert.Error(t, err)
	assert.Empty(t, uc.Ads())
}

func TestApproveAdReplacesById(t *testing.T) {
	adRepo := &fakeAdRepo{}
	uc := newDataUseCase(adRepo, nil, nil)

	_, err := uc.PostAd(context.Background(), "My ad", "Buy things", "")
	assert.NoError(t, err)

	updated, err := uc.ApproveAd(context.Background(), "ad-1")
	assert.NoError(t, err)
	assert.Equal(t, entity.AdStatusApproved, updated.Status)

	ads := uc.Ads()
	if assert.Len(t, ads, 1) {
		assert.Equal(t, entity.AdStatusApproved, ads[0].Status)
	}
}

func TestDeleteAdRemovesById(t *testing.T) {
	adRepo := &fakeAdRepo{}
	uc := newDataUseCase(adRepo, nil, nil)

	_, err := uc.PostAd(context.Background(), "My ad", "Buy things", "")
	assert.NoError(t, err)

	assert.NoError(t, uc.DeleteAd(context.Background(), "ad-1"))
	assert.Empty(t, uc.Ads())
}

func TestReferralEarnings(t *testing.T) {
	txRepo := &fakeTxRepo{transactions: []*entity.Transaction{
		{ID: "tx1", Type: entity.TransactionTypeReferral, Amount: 5},
		{ID: "tx2", Type: entity.TransactionTypePayment, Amount: 100},
		{ID: "tx3", Type: entity.TransactionTypeReferral, Amount: 2.5},
	}}
	uc := newDataUseCase(nil, txRepo, nil)

	_, err := uc.LoadTransactions(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 7.5, uc.ReferralEarnings())
}

func TestAdStats(t *testing.T) {
	adRepo := &fakeAdRepo{}
	uc := newDataUseCase(adRepo, nil, nil)

	uc.mu.Lock()
	uc.ads = []*entity.Ad{
		{ID: "a1", Status: entity.AdStatusApproved, Views: 10},
		{ID: "a2", Status: entity.AdStatusPending, Views: 3},
		{ID: "a3", Status: entity.AdStatusRejected},
	}
	uc.mu.Unlock()

	stats := uc.AdStats()
	assert.Equal(t, AdStats{Total: 3, Approved: 1, Pending: 1, Rejected: 1, Views: 13}, stats)
}
