package ticket

import "context"

// Repository provides read access to the ticket store. All methods acquire
// and release their own store handle; no state is held between calls.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]Ticket, error)
	Stats(ctx context.Context, groupBy GroupField) (*Stats, error)
	Search(ctx context.Context, query string, field SearchField, limit int) ([]Ticket, error)
}
