package repository

import (
	"context"

	"earnhub/internal/domain/entity"
	"earnhub/internal/domain/repository"
	"earnhub/internal/infrastructure/platform"
)

type restTicketRepository struct {
	client *platform.Client
}

func NewRestTicketRepository(client *platform.Client) repository.TicketRepository {
	return &restTicketRepository{
		client: client,
	}
}

func (r *restTicketRepository) ListByUser(ctx context.Context) ([]*entity.SupportTicket, error) {
	var tickets []*entity.SupportTicket
	if err := r.client.GetJSON(ctx, "/api/tickets/user", &tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}

func (r *restTicketRepository) Create(ctx context.Context, subject, message string) (*entity.SupportTicket, error) {
	req := map[string]string{
		"subject": subject,
		"message": message,
	}

	var created entity.SupportTicket
	if err := r.client.PostJSON(ctx, "/api/tickets/create", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *restTicketRepository) Close(ctx context.Context, id string) (*entity.SupportTicket, error) {
	var closed entity.SupportTicket
	if err := r.client.PutJSON(ctx, "/api/tickets/"+sanitizeID(id)+"/close", nil, &closed); err != nil {
		return nil, err
	}
	return &closed, nil
}
