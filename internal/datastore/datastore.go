// Package datastore persists the contribution snapshot in SQL. Entities
// are stored as JSON payloads beside the indexed columns the count and
// range queries need, which keeps the three backends on one schema.
package datastore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "modernc.org/sqlite"             // SQLite driver

	"github.com/jordanopensource/topcontrib/internal/contract"
	"github.com/jordanopensource/topcontrib/schema"
)

// SQLStore implements contract.Store over database/sql with a sqlite,
// mysql or postgresql backend.
type SQLStore struct {
	db      *sql.DB
	backend schema.DatabaseBackend
}

var _ contract.Store = &SQLStore{} // Compile-time check

// New opens the configured backend, verifies the connection and creates
// the tables if they do not exist.
func New(backend schema.DatabaseBackend, connStr string) (*SQLStore, error) {
	var db *sql.DB
	var err error

	switch backend {
	case schema.SQLiteBackend:
		db, err = sql.Open("sqlite", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite store at %q: %w. Ensure the directory is writable", connStr, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)

	case schema.MySQLBackend:
		// connStr should be:
		// user:password@tcp(host:port)/dbname
		db, err = sql.Open("mysql", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to MySQL store: %w. Check connection format: user:password@tcp(host:port)/dbname", err)
		}

	case schema.PostgreSQLBackend:
		// connStr should be:
		// host=localhost port=5432 user=postgres password=secret dbname=topcontrib
		db, err = sql.Open("pgx", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL store: %w. Check connection format: host=localhost port=5432 user=postgres dbname=mydb", err)
		}

	default:
		return nil, fmt.Errorf("unsupported store backend: %s. Must be sqlite, mysql, or postgresql", backend)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s store. Check that the server is running and connection parameters are valid: %w", backend, err)
	}

	for _, query := range createTableQueries(backend) {
		if _, err := db.Exec(query); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to create store schema: %w", err)
		}
	}

	return &SQLStore{db: db, backend: backend}, nil
}

// Close releases the underlying connection pool.
func (s *SQLStore) Close() error {
	return s.db.Close()
}

// FetchAllUsers returns every stored user ordered by username.
func (s *SQLStore) FetchAllUsers(ctx context.Context) ([]schema.User, error) {
	rows, err := s.db.QueryContext(ctx, s.rebind("SELECT payload FROM users ORDER BY username"))
	if err != nil {
		return nil, contract.Upstream(err)
	}
	defer func() { _ = rows.Close() }()

	var users []schema.User
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, contract.Upstream(err)
		}
		var u schema.User
		if err := json.Unmarshal(payload, &u); err != nil {
			return nil, contract.Upstream(fmt.Errorf("corrupt user payload: %w", err))
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, contract.Upstream(err)
	}
	return users, nil
}

// FetchUserByUsername returns one user, or ErrNotFound.
func (s *SQLStore) FetchUserByUsername(ctx context.Context, username string) (*schema.User, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, s.rebind("SELECT payload FROM users WHERE username = ?"), username).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, contract.NotFound("user", username)
	}
	if err != nil {
		return nil, contract.Upstream(err)
	}
	var u schema.User
	if err := json.Unmarshal(payload, &u); err != nil {
		return nil, contract.Upstream(fmt.Errorf("corrupt user payload: %w", err))
	}
	return &u, nil
}

// FetchAllOrganizations returns every stored organization ordered by
// username.
func (s *SQLStore) FetchAllOrganizations(ctx context.Context) ([]schema.Organization, error) {
	rows, err := s.db.QueryContext(ctx, s.rebind("SELECT payload FROM organizations ORDER BY username"))
	if err != nil {
		return nil, contract.Upstream(err)
	}
	defer func() { _ = rows.Close() }()

	var orgs []schema.Organization
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, contract.Upstream(err)
		}
		var o schema.Organization
		if err := json.Unmarshal(payload, &o); err != nil {
			return nil, contract.Upstream(fmt.Errorf("corrupt organization payload: %w", err))
		}
		orgs = append(orgs, o)
	}
	if err := rows.Err(); err != nil {
		return nil, contract.Upstream(err)
	}
	return orgs, nil
}

// FetchOrganizationByUsername returns one organization, or ErrNotFound.
func (s *SQLStore) FetchOrganizationByUsername(ctx context.Context, username string) (*schema.Organization, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, s.rebind("SELECT payload FROM organizations WHERE username = ?"), username).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, contract.NotFound("organization", username)
	}
	if err != nil {
		return nil, contract.Upstream(err)
	}
	var o schema.Organization
	if err := json.Unmarshal(payload, &o); err != nil {
		return nil, contract.Upstream(fmt.Errorf("corrupt organization payload: %w", err))
	}
	return &o, nil
}

// CountUsersCreatedBefore counts users created strictly before the
// given instant, across the whole collection.
func (s *SQLStore) CountUsersCreatedBefore(ctx context.Context, before time.Time) (int, error) {
	return s.countCreatedBefore(ctx, "users", before)
}

// CountOrganizationsCreatedBefore is the organization equivalent.
func (s *SQLStore) CountOrganizationsCreatedBefore(ctx context.Context, before time.Time) (int, error) {
	return s.countCreatedBefore(ctx, "organizations", before)
}

func (s *SQLStore) countCreatedBefore(ctx context.Context, table string, before time.Time) (int, error) {
	var count int
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE created_at < ?", table)
	if err := s.db.QueryRowContext(ctx, s.rebind(query), before.UTC().Unix()).Scan(&count); err != nil {
		return 0, contract.Upstream(err)
	}
	return count, nil
}

// FetchUsersCreatedBetween projects users in the inclusive range to
// their creation timestamps, ascending.
func (s *SQLStore) FetchUsersCreatedBetween(ctx context.Context, from, to time.Time) ([]time.Time, error) {
	return s.fetchCreatedBetween(ctx, "users", from, to)
}

// FetchOrganizationsCreatedBetween is the organization equivalent.
func (s *SQLStore) FetchOrganizationsCreatedBetween(ctx context.Context, from, to time.Time) ([]time.Time, error) {
	return s.fetchCreatedBetween(ctx, "organizations", from, to)
}

func (s *SQLStore) fetchCreatedBetween(ctx context.Context, table string, from, to time.Time) ([]time.Time, error) {
	query := fmt.Sprintf("SELECT created_at FROM %s WHERE created_at >= ? AND created_at <= ? ORDER BY created_at", table)
	rows, err := s.db.QueryContext(ctx, s.rebind(query), from.UTC().Unix(), to.UTC().Unix())
	if err != nil {
		return nil, contract.Upstream(err)
	}
	defer func() { _ = rows.Close() }()

	var stamps []time.Time
	for rows.Next() {
		var unix int64
		if err := rows.Scan(&unix); err != nil {
			return nil, contract.Upstream(err)
		}
		stamps = append(stamps, time.Unix(unix, 0).UTC())
	}
	if err := rows.Err(); err != nil {
		return nil, contract.Upstream(err)
	}
	return stamps, nil
}

// FetchLatestRefreshTimestamp reports the last ingestion run. A zero
// time with a nil error means no refresh has been recorded yet.
func (s *SQLStore) FetchLatestRefreshTimestamp(ctx context.Context) (time.Time, error) {
	var latest sql.NullInt64
	if err := s.db.QueryRowContext(ctx, s.rebind("SELECT MAX(refreshed_at) FROM refresh_log")).Scan(&latest); err != nil {
		return time.Time{}, contract.Upstream(err)
	}
	if !latest.Valid {
		return time.Time{}, nil
	}
	return time.Unix(latest.Int64, 0).UTC(), nil
}

// UpsertUser inserts or replaces a user document. This is the ingestion
// feed's write path.
func (s *SQLStore) UpsertUser(ctx context.Context, user *schema.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user %q: %w", user.Username, err)
	}
	_, err = s.db.ExecContext(ctx, s.rebind(upsertUserQuery(s.backend)),
		user.Username, payload, user.CreatedAt.UTC().Unix(), user.IsMember, user.Score)
	if err != nil {
		return contract.Upstream(err)
	}
	return nil
}

// UpsertOrganization inserts or replaces an organization document.
func (s *SQLStore) UpsertOrganization(ctx context.Context, org *schema.Organization) error {
	payload, err := json.Marshal(org)
	if err != nil {
		return fmt.Errorf("failed to encode organization %q: %w", org.Username, err)
	}
	_, err = s.db.ExecContext(ctx, s.rebind(upsertOrganizationQuery(s.backend)),
		org.Username, payload, org.CreatedAt.UTC().Unix(), org.RepositoriesCount)
	if err != nil {
		return contract.Upstream(err)
	}
	return nil
}

// RecordRefresh marks the completion of an ingestion run.
func (s *SQLStore) RecordRefresh(ctx context.Context, at time.Time) error {
	_, err := s.db.ExecContext(ctx, s.rebind("INSERT INTO refresh_log (refreshed_at) VALUES (?)"), at.UTC().Unix())
	if err != nil {
		return contract.Upstream(err)
	}
	return nil
}
