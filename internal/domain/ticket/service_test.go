package ticket_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ganot/soporte-mcp/internal/domain/ticket"
	"github.com/ganot/soporte-mcp/internal/repository/mocks"
)

func TestTicketService_ListInvalidPriority(t *testing.T) {
	ctx := context.Background()

	// No expectations set: the repository must not be reached.
	repo := &mocks.TicketRepository{}
	svc := ticket.NewService(repo, nil)

	_, err := svc.List(ctx, ticket.ListRequest{Priority: "critica", Limit: 20})
	require.ErrorIs(t, err, ticket.ErrInvalidArgument)
	require.Contains(t, err.Error(), "critica")
	require.Contains(t, err.Error(), "baja, media, alta, urgente")
	repo.AssertExpectations(t)
}

func TestTicketService_ListInvalidStatus(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.TicketRepository{}
	svc := ticket.NewService(repo, nil)

	_, err := svc.List(ctx, ticket.ListRequest{Status: "pendiente", Limit: 20})
	require.ErrorIs(t, err, ticket.ErrInvalidArgument)
	require.Contains(t, err.Error(), "pendiente")
	require.Contains(t, err.Error(), "abierto, cerrado")
	repo.AssertExpectations(t)
}

func TestTicketService_ListNormalizesCase(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.TicketRepository{}
	repo.On("List", ctx, ticket.Filter{
		Priority: ticket.PriorityUrgent,
		Status:   ticket.StatusOpen,
		Limit:    20,
	}).Return([]ticket.Ticket{}, nil)

	svc := ticket.NewService(repo, nil)
	_, err := svc.List(ctx, ticket.ListRequest{Priority: "URGENTE", Status: " Abierto ", Limit: 20})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestTicketService_ListClampsLimit(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name      string
		requested int
		clamped   int
	}{
		{"zero", 0, 1},
		{"negative", -5, 1},
		{"in range", 20, 20},
		{"above max", 500, 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &mocks.TicketRepository{}
			repo.On("List", ctx, ticket.Filter{Limit: tc.clamped}).Return([]ticket.Ticket{}, nil)

			svc := ticket.NewService(repo, nil)
			_, err := svc.List(ctx, ticket.ListRequest{Limit: tc.requested})
			require.NoError(t, err)
			repo.AssertExpectations(t)
		})
	}
}

func TestTicketService_StatsDefaultsToStatus(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.TicketRepository{}
	repo.On("Stats", ctx, ticket.GroupByStatus).Return(&ticket.Stats{}, nil)

	svc := ticket.NewService(repo, nil)
	_, err := svc.Stats(ctx, "")
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestTicketService_StatsInvalidGroupBy(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.TicketRepository{}
	svc := ticket.NewService(repo, nil)

	_, err := svc.Stats(ctx, "fecha")
	require.ErrorIs(t, err, ticket.ErrInvalidArgument)
	require.Contains(t, err.Error(), "fecha")
	require.Contains(t, err.Error(), "estado, prioridad, cliente")
	repo.AssertExpectations(t)
}

func TestTicketService_SearchRequiresQuery(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.TicketRepository{}
	svc := ticket.NewService(repo, nil)

	_, err := svc.Search(ctx, ticket.SearchRequest{Query: "   ", Limit: 20})
	require.ErrorIs(t, err, ticket.ErrInvalidArgument)
	repo.AssertExpectations(t)
}

func TestTicketService_SearchInvalidField(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.TicketRepository{}
	svc := ticket.NewService(repo, nil)

	_, err := svc.Search(ctx, ticket.SearchRequest{Query: "error", Field: "cuerpo", Limit: 20})
	require.ErrorIs(t, err, ticket.ErrInvalidArgument)
	require.Contains(t, err.Error(), "cuerpo")
	require.Contains(t, err.Error(), "asunto, descripcion, ambos")
	repo.AssertExpectations(t)
}

func TestTicketService_SearchDefaultsToSubject(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.TicketRepository{}
	repo.On("Search", ctx, "error 500", ticket.FieldSubject, 20).Return([]ticket.Ticket{}, nil)

	svc := ticket.NewService(repo, nil)
	_, err := svc.Search(ctx, ticket.SearchRequest{Query: "error 500", Limit: 20})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestTicketService_SearchNormalizesField(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.TicketRepository{}
	repo.On("Search", ctx, "redis", ticket.FieldBoth, 100).Return([]ticket.Ticket{}, nil)

	svc := ticket.NewService(repo, nil)
	_, err := svc.Search(ctx, ticket.SearchRequest{Query: "redis", Field: "AMBOS", Limit: 250})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestTicketService_SearchKeepsQueryVerbatim(t *testing.T) {
	ctx := context.Background()

	// Wildcards and casing in the search text are passed through untouched;
	// only the field selector is normalized.
	repo := &mocks.TicketRepository{}
	repo.On("Search", ctx, "Error_50%", ticket.FieldSubject, 20).Return([]ticket.Ticket{}, nil)

	svc := ticket.NewService(repo, nil)
	_, err := svc.Search(ctx, ticket.SearchRequest{Query: "Error_50%", Limit: 20})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestTicketService_ListPropagatesRepoError(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.TicketRepository{}
	repo.On("List", ctx, mock.Anything).Return(nil, context.DeadlineExceeded)

	svc := ticket.NewService(repo, nil)
	_, err := svc.List(ctx, ticket.ListRequest{Limit: 20})
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
