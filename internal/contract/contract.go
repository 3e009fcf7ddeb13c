// Package contract holds the interfaces and configuration shared between
// the serving layers and their collaborators.
package contract

import (
	"context"
	"time"

	"github.com/jordanopensource/topcontrib/schema"
)

// Store is the external data source holding the contribution snapshot.
// The ingestion feed owns the write path (Upsert*, RecordRefresh); the
// serving layers only read. Implementations wrap transport failures with
// ErrUpstream and missing rows with ErrNotFound.
type Store interface {
	FetchAllUsers(ctx context.Context) ([]schema.User, error)
	FetchUserByUsername(ctx context.Context, username string) (*schema.User, error)
	FetchAllOrganizations(ctx context.Context) ([]schema.Organization, error)
	FetchOrganizationByUsername(ctx context.Context, username string) (*schema.Organization, error)

	// Count and projection queries backing the growth series baseline.
	CountUsersCreatedBefore(ctx context.Context, before time.Time) (int, error)
	CountOrganizationsCreatedBefore(ctx context.Context, before time.Time) (int, error)
	FetchUsersCreatedBetween(ctx context.Context, from, to time.Time) ([]time.Time, error)
	FetchOrganizationsCreatedBetween(ctx context.Context, from, to time.Time) ([]time.Time, error)

	// FetchLatestRefreshTimestamp reports when the ingestion feed last ran.
	FetchLatestRefreshTimestamp(ctx context.Context) (time.Time, error)

	UpsertUser(ctx context.Context, user *schema.User) error
	UpsertOrganization(ctx context.Context, org *schema.Organization) error
	RecordRefresh(ctx context.Context, at time.Time) error

	Close() error
}

// UserSnapshot serves point-in-time copies of the full user collection.
// Get never blocks on a refresh in progress; callers must treat the
// returned slice as immutable.
type UserSnapshot interface {
	Get(ctx context.Context) ([]schema.User, error)
	Refresh(ctx context.Context) error
}
