package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/ganot/soporte-mcp/internal/domain/ticket"
	"github.com/ganot/soporte-mcp/internal/repository"
)

const ticketColumns = "id, cliente, asunto, descripcion, estado, prioridad, fecha_creacion, fecha_actualizacion"

// groupColumns maps each grouping criterion to a literal column reference.
// The grouping column is never interpolated from caller input.
var groupColumns = map[ticket.GroupField]string{
	ticket.GroupByStatus:   "estado",
	ticket.GroupByPriority: "prioridad",
	ticket.GroupByClient:   "cliente",
}

// TicketRepository implements ticket.Repository for SQLite
type TicketRepository struct {
	store *Store
}

// NewTicketRepository creates a new TicketRepository
func NewTicketRepository(store *Store) *TicketRepository {
	return &TicketRepository{store: store}
}

// List returns tickets matching the filter, newest first.
func (r *TicketRepository) List(ctx context.Context, filter ticket.Filter) ([]ticket.Ticket, error) {
	query := "SELECT " + ticketColumns + " FROM tickets"

	args := []any{}
	conditions := []string{}

	if filter.Priority != "" {
		conditions = append(conditions, "prioridad = ?")
		args = append(args, filter.Priority)
	}

	if filter.Status != "" {
		conditions = append(conditions, "estado = ?")
		args = append(args, filter.Status)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY fecha_creacion DESC LIMIT ?"
	args = append(args, filter.Limit)

	var tickets []ticket.Ticket
	err := r.store.withConn(ctx, func(db *sql.DB) error {
		var err error
		tickets, err = queryTickets(ctx, db, query, args...)
		return err
	})
	if err != nil {
		return nil, err
	}

	return tickets, nil
}

// Stats computes the total count, the distribution grouped by the given
// criterion (highest count first), and the fixed supplementary metrics.
func (r *TicketRepository) Stats(ctx context.Context, groupBy ticket.GroupField) (*ticket.Stats, error) {
	column, ok := groupColumns[groupBy]
	if !ok {
		return nil, fmt.Errorf("unknown grouping field %q", groupBy)
	}

	stats := &ticket.Stats{}
	err := r.store.withConn(ctx, func(db *sql.DB) error {
		if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM tickets").Scan(&stats.TotalTickets); err != nil {
			return fmt.Errorf("failed to count tickets: %w: %w", repository.ErrStoreFailure, err)
		}

		distribution, err := groupedCounts(ctx, db,
			"SELECT "+column+", COUNT(*) AS cantidad FROM tickets GROUP BY "+column+" ORDER BY cantidad DESC")
		if err != nil {
			return err
		}
		stats.Distribution = distribution

		if err := db.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM tickets WHERE estado = ?", ticket.StatusOpen).Scan(&stats.Metrics.OpenTickets); err != nil {
			return fmt.Errorf("failed to count open tickets: %w: %w", repository.ErrStoreFailure, err)
		}

		if err := db.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM tickets WHERE prioridad = ?", ticket.PriorityUrgent).Scan(&stats.Metrics.UrgentTickets); err != nil {
			return fmt.Errorf("failed to count urgent tickets: %w: %w", repository.ErrStoreFailure, err)
		}

		topClients, err := groupedCounts(ctx, db,
			"SELECT cliente, COUNT(*) AS cantidad FROM tickets GROUP BY cliente ORDER BY cantidad DESC LIMIT 5")
		if err != nil {
			return err
		}
		stats.Metrics.TopClients = make([]ticket.ClientCount, 0, len(topClients))
		for _, group := range topClients {
			stats.Metrics.TopClients = append(stats.Metrics.TopClients, ticket.ClientCount{
				Client:  group.Value,
				Tickets: group.Count,
			})
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return stats, nil
}

// Search returns tickets whose selected field contains the query text,
// newest first. The text is bound as a LIKE pattern wrapped in %, so SQL
// wildcards inside it keep their wildcard meaning.
func (r *TicketRepository) Search(ctx context.Context, query string, field ticket.SearchField, limit int) ([]ticket.Ticket, error) {
	pattern := "%" + query + "%"

	var condition string
	args := []any{}
	switch field {
	case ticket.FieldSubject:
		condition = "asunto LIKE ?"
		args = append(args, pattern)
	case ticket.FieldDescription:
		condition = "descripcion LIKE ?"
		args = append(args, pattern)
	case ticket.FieldBoth:
		condition = "(asunto LIKE ? OR descripcion LIKE ?)"
		args = append(args, pattern, pattern)
	default:
		return nil, fmt.Errorf("unknown search field %q", field)
	}

	sqlQuery := "SELECT " + ticketColumns + " FROM tickets WHERE " + condition +
		" ORDER BY fecha_creacion DESC LIMIT ?"
	args = append(args, limit)

	var tickets []ticket.Ticket
	err := r.store.withConn(ctx, func(db *sql.DB) error {
		var err error
		tickets, err = queryTickets(ctx, db, sqlQuery, args...)
		return err
	})
	if err != nil {
		return nil, err
	}

	return tickets, nil
}

func queryTickets(ctx context.Context, db *sql.DB, query string, args ...any) ([]ticket.Ticket, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tickets: %w: %w", repository.ErrStoreFailure, err)
	}
	defer rows.Close()

	tickets := []ticket.Ticket{}
	for rows.Next() {
		var tk ticket.Ticket
		var description sql.NullString
		err := rows.Scan(
			&tk.ID,
			&tk.Client,
			&tk.Subject,
			&description,
			&tk.Status,
			&tk.Priority,
			&tk.CreatedAt,
			&tk.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ticket: %w: %w", repository.ErrStoreFailure, err)
		}
		if description.Valid {
			tk.Description = &description.String
		}
		tickets = append(tickets, tk)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ticket rows: %w: %w", repository.ErrStoreFailure, err)
	}

	return tickets, nil
}

func groupedCounts(ctx context.Context, db *sql.DB, query string) (ticket.Distribution, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to group tickets: %w: %w", repository.ErrStoreFailure, err)
	}
	defer rows.Close()

	groups := ticket.Distribution{}
	for rows.Next() {
		var group ticket.GroupCount
		if err := rows.Scan(&group.Value, &group.Count); err != nil {
			return nil, fmt.Errorf("failed to scan group count: %w: %w", repository.ErrStoreFailure, err)
		}
		groups = append(groups, group)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating group rows: %w: %w", repository.ErrStoreFailure, err)
	}

	return groups, nil
}
