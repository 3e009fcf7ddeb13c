//go:build database

package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jordanopensource/topcontrib/internal/contract"
	"github.com/jordanopensource/topcontrib/internal/datastore"
	"github.com/jordanopensource/topcontrib/schema"
)

// TestStoreWithPostgres exercises the full store contract against a real
// PostgreSQL server.
func TestStoreWithPostgres(t *testing.T) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_HOST_AUTH_METHOD": "trust",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = pgC.Terminate(ctx) }()
	time.Sleep(5 * time.Second)

	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connStr := fmt.Sprintf("host=%s port=%s user=postgres dbname=postgres", host, port.Port())
	store, err := datastore.New(schema.PostgreSQLBackend, connStr)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	exerciseStore(t, store)
}

// TestStoreWithMySQL exercises the full store contract against a real
// MySQL server.
func TestStoreWithMySQL(t *testing.T) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "mysql:8",
		ExposedPorts: []string{"3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret123",
			"MYSQL_DATABASE":      "topcontrib",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(60 * time.Second),
	}
	mysqlC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = mysqlC.Terminate(ctx) }()

	host, err := mysqlC.Host(ctx)
	require.NoError(t, err)
	port, err := mysqlC.MappedPort(ctx, "3306")
	require.NoError(t, err)

	connStr := fmt.Sprintf("root:secret123@tcp(%s:%s)/topcontrib", host, port.Port())
	store, err := datastore.New(schema.MySQLBackend, connStr)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	exerciseStore(t, store)
}

// exerciseStore runs the shared store scenario: upsert, fetch, counts,
// range queries and the refresh log.
func exerciseStore(t *testing.T, store *datastore.SQLStore) {
	t.Helper()
	ctx := context.Background()

	created := time.Date(2021, time.June, 1, 10, 0, 0, 0, time.UTC)
	user := &schema.User{
		Username:  "lina",
		Name:      "Lina",
		CreatedAt: created,
		IsMember:  true,
		CommitContributions: []schema.RepoContribution{{
			RepositoryName: "handbook",
			StarsCount:     8,
			Records: []schema.ContributionRecord{
				{OccurredAt: created.AddDate(0, 2, 0), CommitCount: 3},
			},
		}},
	}
	require.NoError(t, store.UpsertUser(ctx, user))

	// Upsert again to confirm replace semantics
	user.Score = 12
	require.NoError(t, store.UpsertUser(ctx, user))

	got, err := store.FetchUserByUsername(ctx, "lina")
	require.NoError(t, err)
	assert.Equal(t, 12, got.Score)
	require.Len(t, got.CommitContributions, 1)

	_, err = store.FetchUserByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, contract.ErrNotFound)

	users, err := store.FetchAllUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)

	count, err := store.CountUsersCreatedBefore(ctx, created.AddDate(1, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	between, err := store.FetchUsersCreatedBetween(ctx, created.AddDate(0, -1, 0), created.AddDate(0, 1, 0))
	require.NoError(t, err)
	require.Len(t, between, 1)
	assert.Equal(t, created.Unix(), between[0].Unix())

	org := &schema.Organization{
		Username:          "josa",
		CreatedAt:         time.Date(2010, time.May, 20, 0, 0, 0, 0, time.UTC),
		RepositoriesCount: 12,
	}
	require.NoError(t, store.UpsertOrganization(ctx, org))

	gotOrg, err := store.FetchOrganizationByUsername(ctx, "josa")
	require.NoError(t, err)
	assert.Equal(t, 12, gotOrg.RepositoriesCount)

	refreshedAt := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, store.RecordRefresh(ctx, refreshedAt))
	latest, err := store.FetchLatestRefreshTimestamp(ctx)
	require.NoError(t, err)
	assert.Equal(t, refreshedAt.Unix(), latest.Unix())
}
