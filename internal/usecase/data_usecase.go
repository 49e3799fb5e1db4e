package usecase

import (
	"context"
	"strings"
	"sync"

	"earnhub/internal/domain/entity"
	"earnhub/internal/domain/repository"
	"earnhub/pkg/errors"
)

// DataUseCase mirrors the session's ads, transactions and support tickets.
// Mutations merge the server's returned record into the mirror (append,
// replace-by-id, remove-by-id); a failed call leaves the mirror untouched.
type DataUseCase struct {
	adRepo     repository.AdRepository
	txRepo     repository.TransactionRepository
	ticketRepo repository.TicketRepository
	notifier   TicketNotifier
	user       entity.Identity

	mu           sync.Mutex
	ads          []*entity.Ad
	transactions []*entity.Transaction
	tickets      []*entity.SupportTicket
	guard        *submitGuard
}

func NewDataUseCase(
	adRepo repository.AdRepository,
	txRepo repository.TransactionRepository,
	ticketRepo repository.TicketRepository,
	notifier TicketNotifier,
	user entity.Identity,
) *DataUseCase {
	return &DataUseCase{
		adRepo:     adRepo,
		txRepo:     txRepo,
		ticketRepo: ticketRepo,
		notifier:   notifier,
		user:       user,
		guard:      newSubmitGuard(),
	}
}

// AdStats is derived from the ad mirror for the dashboard header.
type AdStats struct {
	Total    int `json:"total"`
	Approved int `json:"approved"`
	Pending  int `json:"pending"`
	Rejected int `json:"rejected"`
	Views    int `json:"views"`
}

func (uc *DataUseCase) LoadAds(ctx context.Context) ([]*entity.Ad, error) {
	ads, err := uc.adRepo.ListByUser(ctx)
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	uc.ads = ads
	uc.mu.Unlock()
	return uc.Ads(), nil
}

// LoadAllAds refreshes the mirror with every ad on the platform, for the
// admin approval queue.
func (uc *DataUseCase) LoadAllAds(ctx context.Context) ([]*entity.Ad, error) {
	ads, err := uc.adRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	uc.ads = ads
	uc.mu.Unlock()
	return uc.Ads(), nil
}

// Ads returns a read-only snapshot of the mirror.
func (uc *DataUseCase) Ads() []*entity.Ad {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	snapshot := make([]*entity.Ad, len(uc.ads))
	copy(snapshot, uc.ads)
	return snapshot
}

func (uc *DataUseCase) AdStats() AdStats {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	var stats AdStats
	stats.Total = len(uc.ads)
	for _, ad := range uc.ads {
		stats.Views += ad.Views
		switch ad.Status {
		case entity.AdStatusApproved:
			stats.Approved++
		case entity.AdStatusPending:
			stats.Pending++
		case entity.AdStatusRejected:
			stats.Rejected++
		}
	}
	return stats
}

func (uc *DataUseCase) PostAd(ctx context.Context, title, description, image string) (*entity.Ad, error) {
	if strings.TrimSpace(title) == "" {
		return nil, errors.Validation("Title is required")
	}
	if strings.TrimSpace(description) == "" {
		return nil, errors.Validation("Description is required")
	}

	if !uc.guard.begin("post-ad") {
		return nil, errors.Conflict("An ad submission is already in progress")
	}
	defer uc.guard.end("post-ad")

	created, err := uc.adRepo.Create(ctx, &entity.Ad{
		Title:       title,
		Description: description,
		Image:       image,
		UserID:      uc.user.ID,
		UserName:    uc.user.FullName,
	})
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	uc.ads = append(uc.ads, created)
	uc.mu.Unlock()
	return created, nil
}

func (uc *DataUseCase) ApproveAd(ctx context.Context, id string) (*entity.Ad, error) {
	return uc.updateAdStatus(ctx, id, entity.AdStatusApproved)
}

func (uc *DataUseCase) RejectAd(ctx context.Context, id string) (*entity.Ad, error) {
	return uc.updateAdStatus(ctx, id, entity.AdStatusRejected)
}

func (uc *DataUseCase) updateAdStatus(ctx context.Context, id, status string) (*entity.Ad, error) {
	if id == "" {
		return nil, errors.Validation("Ad id is required")
	}

	updated, err := uc.adRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	for i, ad := range uc.ads {
		if ad.ID == updated.ID {
			uc.ads[i] = updated
			break
		}
	}
	uc.mu.Unlock()
	return updated, nil
}

func (uc *DataUseCase) DeleteAd(ctx context.Context, id string) error {
	if id == "" {
		return errors.Validation("Ad id is required")
	}

	if err := uc.adRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.mu.Lock()
	for i, ad := range uc.ads {
		if ad.ID == id {
			uc.ads = append(uc.ads[:i], uc.ads[i+1:]...)
			break
		}
	}
	uc.mu.Unlock()
	return nil
}

func (uc *DataUseCase) LoadTransactions(ctx context.Context) ([]*entity.Transaction, error) {
	transactions, err := uc.txRepo.ListByUser(ctx)
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	uc.transactions = transactions
	uc.mu.Unlock()
	return uc.Transactions(), nil
}

func (uc *DataUseCase) Transactions() []*entity.Transaction {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	snapshot := make([]*entity.Transaction, len(uc.transactions))
	copy(snapshot, uc.transactions)
	return snapshot
}

// ReferralEarnings sums the referral-type transactions in the mirror.
func (uc *DataUseCase) ReferralEarnings() float64 {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	var total float64
	for _, tx := range uc.transactions {
		if tx.Type == entity.TransactionTypeReferral {
			total += tx.Amount
		}
	}
	return total
}

func (uc *DataUseCase) LoadTickets(ctx context.Context) ([]*entity.SupportTicket, error) {
	tickets, err := uc.ticketRepo.ListByUser(ctx)
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	uc.tickets = tickets
	uc.mu.Unlock()
	return uc.Tickets(), nil
}

func (uc *DataUseCase) Tickets() []*entity.SupportTicket {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	snapshot := make([]*entity.SupportTicket, len(uc.tickets))
	copy(snapshot, uc.tickets)
	return snapshot
}

func (uc *DataUseCase) CreateTicket(ctx context.Context, subject, message string) (*entity.SupportTicket, error) {
	if strings.TrimSpace(subject) == "" {
		return nil, errors.Validation("Subject is required")
	}
	if strings.TrimSpace(message) == "" {
		return nil, errors.Validation("Message is required")
	}

	if !uc.guard.begin("create-ticket") {
		return nil, errors.Conflict("A ticket submission is already in progress")
	}
	defer uc.guard.end("create-ticket")

	created, err := uc.ticketRepo.Create(ctx, subject, message)
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	uc.tickets = append(uc.tickets, created)
	uc.mu.Unlock()

	if uc.notifier != nil {
		uc.notifier.NotifyTicket(uc.user.ID, entity.TicketEvent{Type: "created", Ticket: *created})
	}
	return created, nil
}

func (uc *DataUseCase) CloseTicket(ctx context.Context, id string) (*entity.SupportTicket, error) {
	if id == "" {
		return nil, errors.Validation("Ticket id is required")
	}

	closed, err := uc.ticketRepo.Close(ctx, id)
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	for i, ticket := range uc.tickets {
		if ticket.ID == closed.ID {
			uc.tickets[i] = closed
			break
		}
	}
	uc.mu.Unlock()

	if uc.notifier != nil {
		uc.notifier.NotifyTicket(uc.user.ID, entity.TicketEvent{Type: "closed", Ticket: *closed})
	}
	return closed, nil
}
