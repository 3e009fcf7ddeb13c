package datastore

import (
	"strconv"
	"strings"

	"github.com/jordanopensource/topcontrib/schema"
)

// createTableQueries returns the DDL for the given backend. The payload
// column carries the full JSON document; the remaining columns are the
// indexed projections used by counts and range scans.
func createTableQueries(backend schema.DatabaseBackend) []string {
	switch backend {
	case schema.MySQLBackend:
		return []string{
			`CREATE TABLE IF NOT EXISTS users (
				username VARCHAR(255) PRIMARY KEY,
				payload MEDIUMBLOB NOT NULL,
				created_at BIGINT NOT NULL,
				is_member BOOLEAN NOT NULL,
				score INT NOT NULL,
				INDEX idx_users_created_at (created_at)
			)`,
			`CREATE TABLE IF NOT EXISTS organizations (
				username VARCHAR(255) PRIMARY KEY,
				payload MEDIUMBLOB NOT NULL,
				created_at BIGINT NOT NULL,
				repositories_count INT NOT NULL,
				INDEX idx_organizations_created_at (created_at)
			)`,
			`CREATE TABLE IF NOT EXISTS refresh_log (
				refreshed_at BIGINT NOT NULL
			)`,
		}
	case schema.PostgreSQLBackend:
		return []string{
			`CREATE TABLE IF NOT EXISTS users (
				username TEXT PRIMARY KEY,
				payload BYTEA NOT NULL,
				created_at BIGINT NOT NULL,
				is_member BOOLEAN NOT NULL,
				score INTEGER NOT NULL
			)`,
			`CREATE INDEX IF NOT EXISTS idx_users_created_at ON users (created_at)`,
			`CREATE TABLE IF NOT EXISTS organizations (
				username TEXT PRIMARY KEY,
				payload BYTEA NOT NULL,
				created_at BIGINT NOT NULL,
				repositories_count INTEGER NOT NULL
			)`,
			`CREATE INDEX IF NOT EXISTS idx_organizations_created_at ON organizations (created_at)`,
			`CREATE TABLE IF NOT EXISTS refresh_log (
				refreshed_at BIGINT NOT NULL
			)`,
		}
	default: // SQLite
		return []string{
			`CREATE TABLE IF NOT EXISTS users (
				username TEXT PRIMARY KEY,
				payload BLOB NOT NULL,
				created_at INTEGER NOT NULL,
				is_member INTEGER NOT NULL,
				score INTEGER NOT NULL
			)`,
			`CREATE INDEX IF NOT EXISTS idx_users_created_at ON users (created_at)`,
			`CREATE TABLE IF NOT EXISTS organizations (
				username TEXT PRIMARY KEY,
				payload BLOB NOT NULL,
				created_at INTEGER NOT NULL,
				repositories_count INTEGER NOT NULL
			)`,
			`CREATE INDEX IF NOT EXISTS idx_organizations_created_at ON organizations (created_at)`,
			`CREATE TABLE IF NOT EXISTS refresh_log (
				refreshed_at INTEGER NOT NULL
			)`,
		}
	}
}

func upsertUserQuery(backend schema.DatabaseBackend) string {
	if backend == schema.MySQLBackend {
		return `INSERT INTO users (username, payload, created_at, is_member, score)
			VALUES (?, ?, ?, ?, ?)
			ON DUPLICATE KEY UPDATE
				payload = VALUES(payload),
				created_at = VALUES(created_at),
				is_member = VALUES(is_member),
				score = VALUES(score)`
	}
	// SQLite and PostgreSQL share the ON CONFLICT form
	return `INSERT INTO users (username, payload, created_at, is_member, score)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (username) DO UPDATE SET
			payload = excluded.payload,
			created_at = excluded.created_at,
			is_member = excluded.is_member,
			score = excluded.score`
}

func upsertOrganizationQuery(backend schema.DatabaseBackend) string {
	if backend == schema.MySQLBackend {
		return `INSERT INTO organizations (username, payload, created_at, repositories_count)
			VALUES (?, ?, ?, ?)
			ON DUPLICATE KEY UPDATE
				payload = VALUES(payload),
				created_at = VALUES(created_at),
				repositories_count = VALUES(repositories_count)`
	}
	return `INSERT INTO organizations (username, payload, created_at, repositories_count)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (username) DO UPDATE SET
			payload = excluded.payload,
			created_at = excluded.created_at,
			repositories_count = excluded.repositories_count`
}

// rebind rewrites ? placeholders to $1..$n for PostgreSQL. SQLite and
// MySQL take the query as written.
func (s *SQLStore) rebind(query string) string {
	if s.backend != schema.PostgreSQLBackend {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, ch := range query {
		if ch == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(ch)
	}
	return b.String()
}
