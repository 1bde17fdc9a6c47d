package seed_test

import (
	"context"
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ganot/soporte-mcp/internal/domain/ticket"
	"github.com/ganot/soporte-mcp/internal/seed"
	"github.com/ganot/soporte-mcp/internal/sqlite"
)

func runSeed(t *testing.T, tickets int) (*seed.Summary, *sqlite.TicketRepository, time.Time) {
	t.Helper()

	now := time.Date(2026, 8, 24, 15, 30, 0, 0, time.UTC)
	path := filepath.Join(t.TempDir(), "soporte.db")

	summary, err := seed.Run(context.Background(), seed.Options{
		Path:    path,
		Tickets: tickets,
		Now:     now,
		Rand:    rand.New(rand.NewSource(1)),
	})
	require.NoError(t, err)

	return summary, sqlite.NewTicketRepository(sqlite.NewStore(path)), now
}

func TestSeedProducesRequestedCount(t *testing.T) {
	summary, repo, _ := runSeed(t, 60)
	require.Equal(t, 60, summary.Total)

	stats, err := repo.Stats(context.Background(), ticket.GroupByStatus)
	require.NoError(t, err)
	require.Equal(t, 60, stats.TotalTickets)
}

func TestSeedUrgentTicketsToday(t *testing.T) {
	summary, repo, now := runSeed(t, 60)

	// At least the five forced urgent tickets were created today.
	require.GreaterOrEqual(t, summary.UrgentToday, 5)

	urgent, err := repo.List(context.Background(), ticket.Filter{
		Priority: ticket.PriorityUrgent,
		Status:   ticket.StatusOpen,
		Limit:    100,
	})
	require.NoError(t, err)

	today := now.Format("2006-01-02")
	todayCount := 0
	for _, tk := range urgent {
		if tk.CreatedAt[:len(today)] == today {
			todayCount++
		}
	}
	require.GreaterOrEqual(t, todayCount, 5)
}

func TestSeedValuesStayInEnums(t *testing.T) {
	_, repo, _ := runSeed(t, 60)

	tickets, err := repo.List(context.Background(), ticket.Filter{Limit: 100})
	require.NoError(t, err)
	require.Len(t, tickets, 60)

	for _, tk := range tickets {
		require.Contains(t, ticket.Statuses, tk.Status)
		require.Contains(t, ticket.Priorities, tk.Priority)
		require.NotEmpty(t, tk.Client)
		require.NotEmpty(t, tk.Subject)
		require.NotNil(t, tk.Description)
	}
}

func TestSeedUpdatedAtNotBeforeCreatedAt(t *testing.T) {
	_, repo, _ := runSeed(t, 60)

	tickets, err := repo.List(context.Background(), ticket.Filter{Limit: 100})
	require.NoError(t, err)

	// Timestamps are ISO-8601 text, so string comparison is chronological.
	for _, tk := range tickets {
		require.GreaterOrEqual(t, tk.UpdatedAt, tk.CreatedAt)
	}
}

func TestSeedDistributionsSumToTotal(t *testing.T) {
	summary, _, _ := runSeed(t, 60)

	sum := 0
	for _, group := range summary.ByPriority {
		sum += group.Count
	}
	require.Equal(t, summary.Total, sum)

	sum = 0
	for _, group := range summary.ByStatus {
		sum += group.Count
	}
	require.Equal(t, summary.Total, sum)
}

func TestSeedReplacesExistingDatabase(t *testing.T) {
	now := time.Date(2026, 8, 24, 15, 30, 0, 0, time.UTC)
	path := filepath.Join(t.TempDir(), "soporte.db")

	_, err := seed.Run(context.Background(), seed.Options{Path: path, Tickets: 10, Now: now, Rand: rand.New(rand.NewSource(1))})
	require.NoError(t, err)

	_, err = seed.Run(context.Background(), seed.Options{Path: path, Tickets: 20, Now: now, Rand: rand.New(rand.NewSource(2))})
	require.NoError(t, err)

	repo := sqlite.NewTicketRepository(sqlite.NewStore(path))
	stats, err := repo.Stats(context.Background(), ticket.GroupByStatus)
	require.NoError(t, err)
	require.Equal(t, 20, stats.TotalTickets)
}

func TestSeedRejectsBadOptions(t *testing.T) {
	_, err := seed.Run(context.Background(), seed.Options{})
	require.Error(t, err)

	_, err = seed.Run(context.Background(), seed.Options{
		Path:    filepath.Join(t.TempDir(), "soporte.db"),
		Tickets: 3,
	})
	require.Error(t, err)
}
