package usecase

import (
	"context"

	"earnhub/internal/domain/entity"
)

type AuthClient interface {
	SignIn(ctx context.Context, email, password string) (string, *entity.Identity, error)
	Register(ctx context.Context, fullName, email, password, referralCode string) (string, *entity.Identity, error)
}

// TicketNotifier pushes ticket events to the owner's open chat widget.
type TicketNotifier interface {
	NotifyTicket(userID string, event entity.TicketEvent)
}
