package fixture

import (
	"context"

	crerr "github.com/cockroachdb/errors"
)

// ErrNotFound is returned by a DetailSource when the source has no such fixture.
var ErrNotFound = crerr.New("fixture not found")

// ListSource scrapes today's fixture list. allowed holds the lowercased
// competition labels to keep at scrape time; an empty slice keeps everything.
type ListSource interface {
	ListFixtures(ctx context.Context, allowed []string) ([]Fixture, error)
}

// DetailSource scrapes one fixture's detail page.
type DetailSource interface {
	FixtureDetail(ctx context.Context, fixtureID string) (Detail, error)
}
