package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleancity/waste-collection-api/internal/core/domain"
)

func seedCleaner(t *testing.T, repo *stubCleanerRepo) *domain.Cleaner {
	t.Helper()
	cleaner, err := repo.Create(context.Background(), &domain.Cleaner{
		Name:          "Bob",
		Email:         "bob@example.com",
		Phone:         "555-0202",
		VehicleNumber: "TRUCK-7",
		AssignedArea:  "Downtown",
		Role:          domain.RoleCleaner,
		Status:        domain.CleanerIdle,
	})
	require.NoError(t, err)
	return cleaner
}

func TestCleanerService_UpdateStatus_PublishesSnapshot(t *testing.T) {
	repo := newStubCleanerRepo()
	cleaner := seedCleaner(t, repo)
	cache := &stubLocationCache{}
	svc := NewCleanerService(repo, cache, zerolog.Nop())

	updated, err := svc.UpdateStatus(context.Background(), cleaner.ID, domain.CleanerOnTheWay, "Elm St depot")
	require.NoError(t, err)
	assert.Equal(t, domain.CleanerOnTheWay, updated.Status)
	assert.Equal(t, "Elm St depot", updated.CurrentLocation)

	require.Len(t, cache.published, 1)
	snap := cache.published[0]
	assert.Equal(t, cleaner.ID, snap.CleanerID)
	assert.Equal(t, string(domain.CleanerOnTheWay), snap.Status)
	assert.Equal(t, "Elm St depot", snap.Location)
	assert.False(t, snap.ReportedAt.IsZero())
}

func TestCleanerService_UpdateStatus_CacheFailureIsSwallowed(t *testing.T) {
	repo := newStubCleanerRepo()
	cleaner := seedCleaner(t, repo)
	cache := &stubLocationCache{failWith: errors.New("connection refused")}
	svc := NewCleanerService(repo, cache, zerolog.Nop())

	updated, err := svc.UpdateStatus(context.Background(), cleaner.ID, domain.CleanerArrived, "Elm St")
	require.NoError(t, err)
	assert.Equal(t, domain.CleanerArrived, updated.Status)

	stored, err := repo.FindByID(context.Background(), cleaner.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CleanerArrived, stored.Status)
}

func TestCleanerService_UpdateStatus_InvalidStatus(t *testing.T) {
	repo := newStubCleanerRepo()
	cleaner := seedCleaner(t, repo)
	svc := NewCleanerService(repo, nil, zerolog.Nop())

	_, err := svc.UpdateStatus(context.Background(), cleaner.ID, domain.CleanerStatus("napping"), "")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestCleanerService_LiveLocation_PrefersCache(t *testing.T) {
	repo := newStubCleanerRepo()
	cleaner := seedCleaner(t, repo)
	cache := &stubLocationCache{}
	svc := NewCleanerService(repo, cache, zerolog.Nop())

	_, err := svc.UpdateStatus(context.Background(), cleaner.ID, domain.CleanerOnTheWay, "Elm St")
	require.NoError(t, err)

	live, err := svc.LiveLocation(context.Background(), cleaner.ID)
	require.NoError(t, err)
	assert.True(t, live.Live)
	assert.Equal(t, "Elm St", live.Location)
	require.NotNil(t, live.ReportedAt)
}

func TestCleanerService_LiveLocation_FallsBackToStoredRecord(t *testing.T) {
	repo := newStubCleanerRepo()
	cleaner := seedCleaner(t, repo)

	// No cache at all: the persisted record answers.
	svc := NewCleanerService(repo, nil, zerolog.Nop())

	live, err := svc.LiveLocation(context.Background(), cleaner.ID)
	require.NoError(t, err)
	assert.False(t, live.Live)
	assert.Equal(t, string(domain.CleanerIdle), live.Status)
	assert.Nil(t, live.ReportedAt)
}

func TestCleanerService_LiveLocation_CacheErrorFallsBack(t *testing.T) {
	repo := newStubCleanerRepo()
	cleaner := seedCleaner(t, repo)
	cache := &stubLocationCache{failWith: errors.New("connection refused")}
	svc := NewCleanerService(repo, cache, zerolog.Nop())

	live, err := svc.LiveLocation(context.Background(), cleaner.ID)
	require.NoError(t, err)
	assert.False(t, live.Live)
	assert.Equal(t, cleaner.ID, live.CleanerID)
}

func TestCleanerService_LiveLocation_UnknownCleaner(t *testing.T) {
	svc := NewCleanerService(newStubCleanerRepo(), nil, zerolog.Nop())

	_, err := svc.LiveLocation(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrCleanerNotFound)
}

func TestCleanerService_Delete_Idempotent(t *testing.T) {
	repo := newStubCleanerRepo()
	cleaner := seedCleaner(t, repo)
	svc := NewCleanerService(repo, nil, zerolog.Nop())

	require.NoError(t, svc.Delete(context.Background(), cleaner.ID))
	require.NoError(t, svc.Delete(context.Background(), cleaner.ID))
	require.NoError(t, svc.Delete(context.Background(), "never-existed"))

	_, err := repo.FindByID(context.Background(), cleaner.ID)
	assert.ErrorIs(t, err, domain.ErrCleanerNotFound)
}
