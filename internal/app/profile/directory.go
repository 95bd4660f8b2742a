package profile

import "github.com/jackc/pgx/v5/pgxpool"

// Directory bundles the Store and Matcher behind one surface for handlers.
type Directory struct {
	*Store
	*Matcher
}

// NewDirectory opens the directory over an existing pool.
func NewDirectory(pool *pgxpool.Pool, maxResults, minCommon int) *Directory {
	store := NewStore(pool)
	return &Directory{
		Store:   store,
		Matcher: NewMatcher(store, maxResults, minCommon),
	}
}
