package datastore

import (
	"context"
	"time"

	"github.com/jordanopensource/topcontrib/internal/contract"
	"github.com/jordanopensource/topcontrib/schema"
	"github.com/stretchr/testify/mock"
)

// MockStore is a mock implementation of Store for testing.
type MockStore struct {
	mock.Mock
}

var _ contract.Store = &MockStore{} // Compile-time check

// FetchAllUsers implements the Store interface.
func (m *MockStore) FetchAllUsers(ctx context.Context) ([]schema.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]schema.User)
	return users, args.Error(1)
}

// FetchUserByUsername implements the Store interface.
func (m *MockStore) FetchUserByUsername(ctx context.Context, username string) (*schema.User, error) {
	args := m.Called(ctx, username)
	user, _ := args.Get(0).(*schema.User)
	return user, args.Error(1)
}

// FetchAllOrganizations implements the Store interface.
func (m *MockStore) FetchAllOrganizations(ctx context.Context) ([]schema.Organization, error) {
	args := m.Called(ctx)
	orgs, _ := args.Get(0).([]schema.Organization)
	return orgs, args.Error(1)
}

// FetchOrganizationByUsername implements the Store interface.
func (m *MockStore) FetchOrganizationByUsername(ctx context.Context, username string) (*schema.Organization, error) {
	args := m.Called(ctx, username)
	org, _ := args.Get(0).(*schema.Organization)
	return org, args.Error(1)
}

// CountUsersCreatedBefore implements the Store interface.
func (m *MockStore) CountUsersCreatedBefore(ctx context.Context, before time.Time) (int, error) {
	args := m.Called(ctx, before)
	return args.Int(0), args.Error(1)
}

// CountOrganizationsCreatedBefore implements the Store interface.
func (m *MockStore) CountOrganizationsCreatedBefore(ctx context.Context, before time.Time) (int, error) {
	args := m.Called(ctx, before)
	return args.Int(0), args.Error(1)
}

// FetchUsersCreatedBetween implements the Store interface.
func (m *MockStore) FetchUsersCreatedBetween(ctx context.Context, from, to time.Time) ([]time.Time, error) {
	args := m.Called(ctx, from, to)
	stamps, _ := args.Get(0).([]time.Time)
	return stamps, args.Error(1)
}

// FetchOrganizationsCreatedBetween implements the Store interface.
func (m *MockStore) FetchOrganizationsCreatedBetween(ctx context.Context, from, to time.Time) ([]time.Time, error) {
	args := m.Called(ctx, from, to)
	stamps, _ := args.Get(0).([]time.Time)
	return stamps, args.Error(1)
}

// FetchLatestRefreshTimestamp implements the Store interface.
func (m *MockStore) FetchLatestRefreshTimestamp(ctx context.Context) (time.Time, error) {
	args := m.Called(ctx)
	ts, _ := args.Get(0).(time.Time)
	return ts, args.Error(1)
}

// UpsertUser implements the Store interface.
func (m *MockStore) UpsertUser(ctx context.Context, user *schema.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// UpsertOrganization implements the Store interface.
func (m *MockStore) UpsertOrganization(ctx context.Context, org *schema.Organization) error {
	args := m.Called(ctx, org)
	return args.Error(0)
}

// RecordRefresh implements the Store interface.
func (m *MockStore) RecordRefresh(ctx context.Context, at time.Time) error {
	args := m.Called(ctx, at)
	return args.Error(0)
}

// Close implements the Store interface.
func (m *MockStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
