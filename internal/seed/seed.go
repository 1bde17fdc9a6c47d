// Package seed creates and populates the synthetic support-ticket database.
// It runs as a one-shot step before the query server is useful; the query
// layer never writes and has no way to trigger seeding.
package seed

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ganot/soporte-mcp/internal/domain/ticket"
)

// Schema creates the tickets table. Enum values are enforced by the seeder
// and the query layer's validation, not by database constraints.
const Schema = `
CREATE TABLE IF NOT EXISTS tickets (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    cliente TEXT NOT NULL,
    asunto TEXT NOT NULL,
    descripcion TEXT,
    estado TEXT NOT NULL,
    prioridad TEXT NOT NULL,
    fecha_creacion TEXT NOT NULL,
    fecha_actualizacion TEXT NOT NULL
);
`

// urgentToday is how many tickets are forced to prioridad=urgente with a
// creation time of today, so the data set always has fresh urgent cases.
const urgentToday = 5

// DefaultTickets is the default data set size.
const DefaultTickets = 60

// Options configures a seeding run. Zero values pick sensible defaults;
// Rand and Now are injectable so tests can run deterministically.
type Options struct {
	Path    string
	Tickets int
	Now     time.Time
	Rand    *rand.Rand
}

// Summary reports what a seeding run produced.
type Summary struct {
	Total       int
	UrgentToday int
	ByPriority  ticket.Distribution
	ByStatus    ticket.Distribution
}

// Run deletes any existing database at opts.Path, creates a fresh one, and
// fills it with synthetic tickets spread over the last week.
func Run(ctx context.Context, opts Options) (*Summary, error) {
	if opts.Path == "" {
		return nil, fmt.Errorf("database path required")
	}
	if opts.Tickets <= 0 {
		opts.Tickets = DefaultTickets
	}
	if opts.Tickets < urgentToday {
		return nil, fmt.Errorf("ticket count %d is below the minimum of %d", opts.Tickets, urgentToday)
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	if err := os.Remove(opts.Path); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to remove existing database: %w", err)
	}

	db, err := sql.Open("sqlite", opts.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	if err := generate(ctx, db, opts); err != nil {
		return nil, err
	}

	return summarize(ctx, db, opts.Now)
}

func generate(ctx context.Context, db *sql.DB, opts Options) error {
	rng := opts.Rand
	now := opts.Now

	// Urgent tickets created today are always open and get a fast follow-up.
	for i := 0; i < urgentToday; i++ {
		createdAt := time.Date(
			now.Year(), now.Month(), now.Day(),
			rng.Intn(24), rng.Intn(60), rng.Intn(60), 0, now.Location(),
		)
		updatedAt := createdAt.Add(time.Duration(1+rng.Intn(3)) * time.Hour)

		subject := Subjects[rng.Intn(len(Subjects))]
		if err := insert(ctx, db, ticket.Ticket{
			Client:      Clients[rng.Intn(len(Clients))],
			Subject:     subject,
			Description: describe(ticket.PriorityUrgent, subject),
			Status:      ticket.StatusOpen,
			Priority:    ticket.PriorityUrgent,
			CreatedAt:   createdAt.Format(ticket.TimeLayout),
			UpdatedAt:   updatedAt.Format(ticket.TimeLayout),
		}); err != nil {
			return err
		}
	}

	for i := 0; i < opts.Tickets-urgentToday; i++ {
		priority := weightedPriority(rng)

		daysAgo := rng.Float64() * 7
		createdAt := now.Add(-time.Duration(daysAgo * float64(24*time.Hour)))
		ageDays := int(now.Sub(createdAt).Hours() / 24)

		status := statusFor(rng, priority, ageDays)

		maxHours := min(ageDays*24, 72)
		updatedAt := createdAt.Add(time.Duration(1+rng.Intn(max(1, maxHours))) * time.Hour)

		subject := Subjects[rng.Intn(len(Subjects))]
		if err := insert(ctx, db, ticket.Ticket{
			Client:      Clients[rng.Intn(len(Clients))],
			Subject:     subject,
			Description: describe(priority, subject),
			Status:      status,
			Priority:    priority,
			CreatedAt:   createdAt.Format(ticket.TimeLayout),
			UpdatedAt:   updatedAt.Format(ticket.TimeLayout),
		}); err != nil {
			return err
		}
	}

	return nil
}

func insert(ctx context.Context, db *sql.DB, tk ticket.Ticket) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO tickets (cliente, asunto, descripcion, estado, prioridad, fecha_creacion, fecha_actualizacion)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		tk.Client, tk.Subject, tk.Description, tk.Status, tk.Priority, tk.CreatedAt, tk.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert ticket: %w", err)
	}
	return nil
}

// weightedPriority draws a priority with weights 30/40/20/10 so most
// tickets are low or medium priority.
func weightedPriority(rng *rand.Rand) ticket.Priority {
	switch n := rng.Intn(100); {
	case n < 30:
		return ticket.PriorityLow
	case n < 70:
		return ticket.PriorityMedium
	case n < 90:
		return ticket.PriorityHigh
	default:
		return ticket.PriorityUrgent
	}
}

// statusFor derives estado from priority and ticket age: high-urgency
// tickets close within two days, medium within five, low ones are a coin
// flip.
func statusFor(rng *rand.Rand, priority ticket.Priority, ageDays int) ticket.Status {
	switch priority {
	case ticket.PriorityUrgent, ticket.PriorityHigh:
		if ageDays > 2 {
			return ticket.StatusClosed
		}
		return ticket.StatusOpen
	case ticket.PriorityMedium:
		if ageDays > 5 {
			return ticket.StatusClosed
		}
		return randomStatus(rng)
	default:
		return randomStatus(rng)
	}
}

func randomStatus(rng *rand.Rand) ticket.Status {
	return ticket.Statuses[rng.Intn(len(ticket.Statuses))]
}

func describe(priority ticket.Priority, subject string) *string {
	description := fmt.Sprintf(descriptionTemplates[priority], subject)
	return &description
}

func summarize(ctx context.Context, db *sql.DB, now time.Time) (*Summary, error) {
	summary := &Summary{}

	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM tickets").Scan(&summary.Total); err != nil {
		return nil, fmt.Errorf("failed to count tickets: %w", err)
	}

	today := now.Format("2006-01-02")
	err := db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM tickets WHERE prioridad = ? AND fecha_creacion LIKE ?",
		ticket.PriorityUrgent, today+"%",
	).Scan(&summary.UrgentToday)
	if err != nil {
		return nil, fmt.Errorf("failed to count urgent tickets: %w", err)
	}

	summary.ByPriority, err = distribution(ctx, db, "prioridad")
	if err != nil {
		return nil, err
	}

	summary.ByStatus, err = distribution(ctx, db, "estado")
	if err != nil {
		return nil, err
	}

	return summary, nil
}

func distribution(ctx context.Context, db *sql.DB, column string) (ticket.Distribution, error) {
	rows, err := db.QueryContext(ctx,
		"SELECT "+column+", COUNT(*) AS cantidad FROM tickets GROUP BY "+column+" ORDER BY cantidad DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to group by %s: %w", column, err)
	}
	defer rows.Close()

	var groups ticket.Distribution
	for rows.Next() {
		var group ticket.GroupCount
		if err := rows.Scan(&group.Value, &group.Count); err != nil {
			return nil, fmt.Errorf("failed to scan %s group: %w", column, err)
		}
		groups = append(groups, group)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s groups: %w", column, err)
	}

	return groups, nil
}
