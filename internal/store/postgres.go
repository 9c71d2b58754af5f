package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/A-r-j-u001/OSINT-Hive/internal/dataset"
	"github.com/A-r-j-u001/OSINT-Hive/internal/profile"
)

// PostgresStore reads internal profiles from a PostgreSQL table.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool and verifies it with a ping.
func Connect(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

// Close closes the connection pool.
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

const profileColumns = `identifier, display_name, role, company, location,
	skills, description, followers, contributions, repositories, stars,
	match_score`

// List returns every profile in the profiles table, ordered by identifier.
func (s *PostgresStore) List(ctx context.Context) ([]profile.CanonicalProfile, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+profileColumns+` FROM profiles ORDER BY identifier`)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []profile.CanonicalProfile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read profiles: %w", err)
	}
	return profiles, nil
}

// GetByID returns the profile with the given identifier, or nil when absent.
func (s *PostgresStore) GetByID(ctx context.Context, id string) (*profile.CanonicalProfile, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE identifier = $1`, id)

	p, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (profile.CanonicalProfile, error) {
	var (
		p      profile.CanonicalProfile
		skills string
	)
	err := row.Scan(&p.Identifier, &p.DisplayName, &p.Role, &p.Company,
		&p.Location, &skills, &p.Description, &p.Metrics.Followers,
		&p.Metrics.Contributions, &p.Metrics.Repositories, &p.Metrics.Stars,
		&p.MatchScore)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return p, err
		}
		return p, fmt.Errorf("failed to scan profile: %w", err)
	}
	p.Skills = dataset.SplitList(skills)
	p.Source = profile.SourceInternal
	return p, nil
}
