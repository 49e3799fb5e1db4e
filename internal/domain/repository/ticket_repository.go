package repository

import (
	"context"

	"earnhub/internal/domain/entity"
)

type TicketRepository interface {
	ListByUser(ctx context.Context) ([]*entity.SupportTicket, error)
	Create(ctx context.Context, subject, message string) (*entity.SupportTicket, error)
	Close(ctx context.Context, id string) (*entity.SupportTicket, error)
}
