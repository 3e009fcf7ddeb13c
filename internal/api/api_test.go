package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/jordanopensource/topcontrib/internal/contract"
	"github.com/jordanopensource/topcontrib/internal/datastore"
	"github.com/jordanopensource/topcontrib/internal/snapcache"
	"github.com/jordanopensource/topcontrib/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var pinnedNow = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

func newTestServer(store *datastore.MockStore) *Server {
	cfg := &contract.Config{Port: 0, PageLimit: contract.DefaultPageLimit}
	srv := New(cfg, store, snapcache.New(store, time.Hour))
	srv.now = func() time.Time { return pinnedNow }
	return srv
}

func doRequest(t *testing.T, srv *Server, path string) (int, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), "Response should be JSON")
	return rec.Code, body
}

func snapshotUsers() []schema.User {
	mk := func(username string, member bool, commits int) schema.User {
		return schema.User{
			Username: username,
			Name:     username,
			IsMember: member,
			CommitContributions: []schema.RepoContribution{{
				RepositoryName: "repo",
				StarsCount:     100,
				Records: []schema.ContributionRecord{
					{OccurredAt: pinnedNow.AddDate(0, 0, -5), CommitCount: commits},
				},
			}},
		}
	}
	return []schema.User{mk("casual", false, 1), mk("prolific", true, 9)}
}

func TestHealthcheck(t *testing.T) {
	store := &datastore.MockStore{}
	code, body := doRequest(t, newTestServer(store), "/v1/healthcheck")

	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body["message"], "alive")
}

func TestListUsers(t *testing.T) {
	store := &datastore.MockStore{}
	store.On("FetchAllUsers", mock.Anything).Return(snapshotUsers(), nil)
	refreshed := pinnedNow.Add(-time.Hour)
	store.On("FetchLatestRefreshTimestamp", mock.Anything).Return(refreshed, nil)

	code, body := doRequest(t, newTestServer(store), "/v1/users")

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(2), body["totalCount"])
	assert.Equal(t, refreshed.Format(time.RFC3339), body["updated_at"])

	users := body["users"].([]any)
	require.Len(t, users, 2)
	first := users[0].(map[string]any)
	assert.Equal(t, "prolific", first["username"])
	assert.Equal(t, float64(1), first["currentRank"])
}

func TestListUsers_Pagination(t *testing.T) {
	store := &datastore.MockStore{}
	store.On("FetchAllUsers", mock.Anything).Return(snapshotUsers(), nil)
	store.On("FetchLatestRefreshTimestamp", mock.Anything).Return(time.Time{}, nil)

	code, body := doRequest(t, newTestServer(store), "/v1/users?page=2&limit=1")

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(2), body["totalCount"])
	users := body["users"].([]any)
	require.Len(t, users, 1)
	assert.Equal(t, "casual", users[0].(map[string]any)["username"])
	// updated_at omitted when no refresh has been recorded
	assert.NotContains(t, body, "updated_at")
}

// TestListUsers_PageBeyondIntRange tests that an absurdly large page
// number yields an empty page instead of a panic-recovered 500.
func TestListUsers_PageBeyondIntRange(t *testing.T) {
	store := &datastore.MockStore{}
	store.On("FetchAllUsers", mock.Anything).Return(snapshotUsers(), nil)
	store.On("FetchLatestRefreshTimestamp", mock.Anything).Return(time.Time{}, nil)

	code, body := doRequest(t, newTestServer(store), "/v1/users?page=9223372036854775807")

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(2), body["totalCount"])
	assert.Empty(t, body["users"])
}

// TestListUsers_RefreshLookupFailure tests that a failing refresh-log
// read is logged and updated_at is omitted, while the leaderboard is
// still served.
func TestListUsers_RefreshLookupFailure(t *testing.T) {
	store := &datastore.MockStore{}
	store.On("FetchAllUsers", mock.Anything).Return(snapshotUsers(), nil)
	store.On("FetchLatestRefreshTimestamp", mock.Anything).
		Return(time.Time{}, contract.Upstream(errors.New("refresh_log table dropped")))

	var logs bytes.Buffer
	log.SetOutput(&logs)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	code, body := doRequest(t, newTestServer(store), "/v1/users")

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["success"])
	assert.NotContains(t, body, "updated_at")
	assert.Contains(t, logs.String(), "refresh timestamp lookup failed")
}

func TestListUsers_InvalidParameters(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"bad period", "/v1/users?period=fortnight"},
		{"bad sort key", "/v1/users?sort_by=stars"},
		{"bad type", "/v1/users?type=gists"},
		{"bad contributors", "/v1/users?contributors=bots"},
		{"bad page", "/v1/users?page=nope"},
		{"bad limit", "/v1/users?limit=-5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &datastore.MockStore{}
			store.On("FetchAllUsers", mock.Anything).Return(snapshotUsers(), nil).Maybe()
			store.On("FetchLatestRefreshTimestamp", mock.Anything).Return(time.Time{}, nil).Maybe()

			code, body := doRequest(t, newTestServer(store), tt.path)
			assert.Equal(t, http.StatusBadRequest, code)
			assert.Equal(t, false, body["success"])
		})
	}
}

func TestGetUser(t *testing.T) {
	store := &datastore.MockStore{}
	store.On("FetchUserByUsername", mock.Anything, "lina").Return(&schema.User{Username: "lina"}, nil)

	code, body := doRequest(t, newTestServer(store), "/v1/users/lina")

	assert.Equal(t, http.StatusOK, code)
	data := body["data"].(map[string]any)
	assert.Equal(t, "lina", data["username"])
}

func TestGetUser_NotFound(t *testing.T) {
	store := &datastore.MockStore{}
	store.On("FetchUserByUsername", mock.Anything, "ghost").Return(nil, contract.NotFound("user", "ghost"))

	code, body := doRequest(t, newTestServer(store), "/v1/users/ghost")

	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["message"], "ghost")
	assert.Nil(t, body["data"])
}

func TestGetUserCommits(t *testing.T) {
	store := &datastore.MockStore{}
	user := &schema.User{
		Username: "lina",
		CommitContributions: []schema.RepoContribution{
			{RepositoryName: "podman-compose", StarsCount: 2211},
		},
	}
	store.On("FetchUserByUsername", mock.Anything, "lina").Return(user, nil)

	code, body := doRequest(t, newTestServer(store), "/v1/users/lina/commits")

	assert.Equal(t, http.StatusOK, code)
	repos := body["data"].([]any)
	require.Len(t, repos, 1)
	assert.Equal(t, "podman-compose", repos[0].(map[string]any)["repositoryName"])
}

func TestListOrganizations(t *testing.T) {
	store := &datastore.MockStore{}
	store.On("FetchAllOrganizations", mock.Anything).Return([]schema.Organization{
		{Username: "small", RepositoriesCount: 3},
		{Username: "big", RepositoriesCount: 30},
	}, nil)

	code, body := doRequest(t, newTestServer(store), "/v1/orgs")

	assert.Equal(t, http.StatusOK, code)
	orgs := body["orgs"].([]any)
	require.Len(t, orgs, 2)
	assert.Equal(t, "big", orgs[0].(map[string]any)["username"])

	code, body = doRequest(t, newTestServer(store), "/v1/orgs?sort=asc")
	assert.Equal(t, http.StatusOK, code)
	orgs = body["orgs"].([]any)
	assert.Equal(t, "small", orgs[0].(map[string]any)["username"])

	code, _ = doRequest(t, newTestServer(store), "/v1/orgs?sort=sideways")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestListOrganizations_StoreDown(t *testing.T) {
	store := &datastore.MockStore{}
	store.On("FetchAllOrganizations", mock.Anything).Return(nil, contract.Upstream(errors.New("connection refused")))

	code, body := doRequest(t, newTestServer(store), "/v1/orgs")

	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, false, body["success"])
}

func TestGetOrganizationRepos(t *testing.T) {
	store := &datastore.MockStore{}
	store.On("FetchOrganizationByUsername", mock.Anything, "josa").Return(&schema.Organization{
		Username:     "josa",
		Repositories: []schema.Repository{{Name: "awesome-jordan", StarsCount: 38}},
	}, nil)

	code, body := doRequest(t, newTestServer(store), "/v1/orgs/josa/repos")

	assert.Equal(t, http.StatusOK, code)
	repos := body["data"].([]any)
	require.Len(t, repos, 1)
	assert.Equal(t, "awesome-jordan", repos[0].(map[string]any)["name"])
}

func TestContributions(t *testing.T) {
	store := &datastore.MockStore{}
	store.On("FetchAllUsers", mock.Anything).Return(snapshotUsers(), nil)

	code, body := doRequest(t, newTestServer(store), "/v1/contributions")

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(10), body["commits_last_month"])
}

func TestUserStats_Monthly(t *testing.T) {
	store := &datastore.MockStore{}
	store.On("FetchUsersCreatedBetween", mock.Anything, mock.Anything, mock.Anything).Return([]time.Time{
		time.Date(2021, time.January, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2021, time.March, 2, 0, 0, 0, 0, time.UTC),
	}, nil)
	store.On("CountUsersCreatedBefore", mock.Anything, schema.StartOfYear(2021)).Return(5, nil)

	code, body := doRequest(t, newTestServer(store), "/v1/stats/users?period=2021-01-01_2021-12-31")

	assert.Equal(t, http.StatusOK, code)
	data := body["data"].(map[string]any)
	year := data["2021"].(map[string]any)
	assert.Equal(t, float64(6), year["1"])
	assert.Equal(t, float64(6), year["2"])
	assert.Equal(t, float64(7), year["3"])
}

func TestContributionStats_InvalidAggregation(t *testing.T) {
	store := &datastore.MockStore{}
	store.On("FetchAllUsers", mock.Anything).Return(snapshotUsers(), nil)

	code, body := doRequest(t, newTestServer(store), "/v1/stats/contributions?aggregation=week")

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, body["message"], "aggregation")
}

func TestNotFoundRoute(t *testing.T) {
	store := &datastore.MockStore{}
	code, body := doRequest(t, newTestServer(store), "/v1/nope")

	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, false, body["success"])
}
