package odds

import "context"

// QuoteSource scrapes the bookmaker's current football offer.
type QuoteSource interface {
	Quotes(ctx context.Context) ([]Quote, error)
}

// Repository stores reconciled entries keyed by fixture ID.
type Repository interface {
	Upsert(ctx context.Context, entries ...Entry) error
	List(ctx context.Context) ([]Entry, error)
	Get(ctx context.Context, fixtureID string) (Entry, bool, error)
	Clear(ctx context.Context) (int, error)
}
