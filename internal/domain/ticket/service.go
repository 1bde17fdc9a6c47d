package ticket

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

const (
	// DefaultLimit applies when a caller does not specify a result cap.
	DefaultLimit = 20
	maxLimit     = 100
)

// Service validates tool arguments and delegates reads to the repository.
// All validation happens before any query executes, so an invalid argument
// never touches the store.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new ticket service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{repo: repo, logger: logger}
}

// ListRequest defines filtered-listing inputs. Priority and Status are
// matched case-insensitively; empty means no filter.
type ListRequest struct {
	Priority string
	Status   string
	Limit    int
}

// List returns tickets matching the request, most recent first.
func (s *Service) List(ctx context.Context, req ListRequest) ([]Ticket, error) {
	filter := Filter{Limit: clampLimit(req.Limit)}

	if req.Priority != "" {
		priority, err := parsePriority(req.Priority)
		if err != nil {
			return nil, err
		}
		filter.Priority = priority
	}

	if req.Status != "" {
		status, err := parseStatus(req.Status)
		if err != nil {
			return nil, err
		}
		filter.Status = status
	}

	tickets, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing tickets: %w", err)
	}

	s.logger.Debug("tickets listed", "count", len(tickets), "prioridad", filter.Priority, "estado", filter.Status)
	return tickets, nil
}

// Stats returns aggregated counts grouped by the given criterion. An empty
// criterion defaults to grouping by estado.
func (s *Service) Stats(ctx context.Context, groupBy string) (*Stats, error) {
	field := GroupByStatus
	if groupBy != "" {
		parsed, err := parseGroupField(groupBy)
		if err != nil {
			return nil, err
		}
		field = parsed
	}

	stats, err := s.repo.Stats(ctx, field)
	if err != nil {
		return nil, fmt.Errorf("aggregating tickets: %w", err)
	}

	s.logger.Debug("stats computed", "agrupar_por", field, "total", stats.TotalTickets)
	return stats, nil
}

// SearchRequest defines text-search inputs. Field defaults to asunto.
type SearchRequest struct {
	Query string
	Field string
	Limit int
}

// Search returns tickets whose selected field contains the query text,
// most recent first. SQL LIKE wildcards embedded in the query keep their
// wildcard meaning.
func (s *Service) Search(ctx context.Context, req SearchRequest) ([]Ticket, error) {
	if strings.TrimSpace(req.Query) == "" {
		return nil, fmt.Errorf("%w: busqueda must not be empty", ErrInvalidArgument)
	}

	field := FieldSubject
	if req.Field != "" {
		parsed, err := parseSearchField(req.Field)
		if err != nil {
			return nil, err
		}
		field = parsed
	}

	tickets, err := s.repo.Search(ctx, req.Query, field, clampLimit(req.Limit))
	if err != nil {
		return nil, fmt.Errorf("searching tickets: %w", err)
	}

	s.logger.Debug("tickets searched", "campo", field, "count", len(tickets))
	return tickets, nil
}

func clampLimit(limit int) int {
	if limit < 1 {
		return 1
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}

func parsePriority(value string) (Priority, error) {
	normalized := Priority(strings.ToLower(strings.TrimSpace(value)))
	for _, priority := range Priorities {
		if normalized == priority {
			return priority, nil
		}
	}
	return "", fmt.Errorf("%w: invalid prioridad %q (valid: baja, media, alta, urgente)", ErrInvalidArgument, value)
}

func parseStatus(value string) (Status, error) {
	normalized := Status(strings.ToLower(strings.TrimSpace(value)))
	for _, status := range Statuses {
		if normalized == status {
			return status, nil
		}
	}
	return "", fmt.Errorf("%w: invalid estado %q (valid: abierto, cerrado)", ErrInvalidArgument, value)
}

func parseGroupField(value string) (GroupField, error) {
	normalized := GroupField(strings.ToLower(strings.TrimSpace(value)))
	for _, field := range GroupFields {
		if normalized == field {
			return field, nil
		}
	}
	return "", fmt.Errorf("%w: invalid agrupar_por %q (valid: estado, prioridad, cliente)", ErrInvalidArgument, value)
}

func parseSearchField(value string) (SearchField, error) {
	normalized := SearchField(strings.ToLower(strings.TrimSpace(value)))
	for _, field := range SearchFields {
		if normalized == field {
			return field, nil
		}
	}
	return "", fmt.Errorf("%w: invalid campo %q (valid: asunto, descripcion, ambos)", ErrInvalidArgument, value)
}
