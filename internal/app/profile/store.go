/*
Package profile provides the persistent user-profile directory.

This file defines the Store: upsert, lookup, delete, and listing of profile
rows. Interests are stored as one comma-separated string, e.g.
"music,cricket,aeromodelling".
*/
package profile

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Profile is one row of the profile directory.
type Profile struct {
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	Interests string `json:"interests"`
}

// Store reads and writes the profiles table.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore wraps an open connection pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Upsert inserts the profile or overwrites the existing row for its user ID.
func (s *Store) Upsert(ctx context.Context, p Profile) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO profiles (user_id, name, interests, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (user_id) DO UPDATE SET
			name = excluded.name,
			interests = excluded.interests,
			updated_at = now()
	`, p.UserID, p.Name, p.Interests)
	if err != nil {
		return fmt.Errorf("failed to upsert profile %q: %w", p.UserID, err)
	}
	return nil
}

// Get returns the profile for userID. A missing row is reported as
// (nil, nil) so callers can distinguish absence from store failure.
func (s *Store) Get(ctx context.Context, userID string) (*Profile, error) {
	var p Profile
	err := s.pool.QueryRow(ctx, `
		SELECT user_id, name, interests FROM profiles WHERE user_id = $1
	`, userID).Scan(&p.UserID, &p.Name, &p.Interests)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile %q: %w", userID, err)
	}
	return &p, nil
}

// Delete removes the profile row for userID, if any.
func (s *Store) Delete(ctx context.Context, userID string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM profiles WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete profile %q: %w", userID, err)
	}
	return nil
}

// ListAll returns every profile row.
func (s *Store) ListAll(ctx context.Context) ([]Profile, error) {
	rows, err := s.pool.Query(ctx, `SELECT user_id, name, interests FROM profiles`)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []Profile
	for rows.Next() {
		var p Profile
		if err := rows.Scan(&p.UserID, &p.Name, &p.Interests); err != nil {
			return nil, fmt.Errorf("failed to scan profile row: %w", err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read profile rows: %w", err)
	}

	return profiles, nil
}
