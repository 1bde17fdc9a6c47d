package mocks

import (
	"context"

	"github.com/ganot/soporte-mcp/internal/domain/ticket"
	"github.com/stretchr/testify/mock"
)

// TicketRepository is a mock for ticket.Repository.
type TicketRepository struct {
	mock.Mock
}

func (m *TicketRepository) List(ctx context.Context, filter ticket.Filter) ([]ticket.Ticket, error) {
	args := m.Called(ctx, filter)
	if tickets, ok := args.Get(0).([]ticket.Ticket); ok {
		return tickets, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TicketRepository) Stats(ctx context.Context, groupBy ticket.GroupField) (*ticket.Stats, error) {
	args := m.Called(ctx, groupBy)
	if stats, ok := args.Get(0).(*ticket.Stats); ok {
		return stats, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TicketRepository) Search(ctx context.Context, query string, field ticket.SearchField, limit int) ([]ticket.Ticket, error) {
	args := m.Called(ctx, query, field, limit)
	if tickets, ok := args.Get(0).([]ticket.Ticket); ok {
		return tickets, args.Error(1)
	}
	return nil, args.Error(1)
}
