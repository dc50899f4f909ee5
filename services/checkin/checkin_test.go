package checkin

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusspots/models"
)

type mockCheckInRepo struct {
	created []models.CheckIn
	recent  []models.CheckIn
	err     error
}

func (m *mockCheckInRepo) Create(ci *models.CheckIn) error {
	if m.err != nil {
		return m.err
	}
	m.created = append(m.created, *ci)
	return nil
}

func (m *mockCheckInRepo) RecentBySpot(spotID string, since time.Time) ([]models.CheckIn, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.recent, nil
}

type stubOccupancyStore struct {
	snapshots map[string]models.OccupancySnapshot
}

func (s *stubOccupancyStore) Get(_ context.Context, spotID string) (*models.OccupancySnapshot, error) {
	if snap, ok := s.snapshots[spotID]; ok {
		return &snap, nil
	}
	return nil, nil
}

func (s *stubOccupancyStore) Set(_ context.Context, snapshot models.OccupancySnapshot) error {
	if s.snapshots == nil {
		s.snapshots = make(map[string]models.OccupancySnapshot)
	}
	s.snapshots[snapshot.SpotID] = snapshot
	return nil
}

type stubEnqueuer struct {
	spotIDs []string
}

func (s *stubEnqueuer) EnqueueOccupancyRecompute(spotID string) error {
	s.spotIDs = append(s.spotIDs, spotID)
	return nil
}

func TestSubmitStoresAndEnqueues(t *testing.T) {
	repo := &mockCheckInRepo{}
	enq := &stubEnqueuer{}
	svc := &DefaultCheckInService{Repo: repo, Store: &stubOccupancyStore{}, Enqueuer: enq}

	record, err := svc.Submit(context.Background(), CheckInInput{
		SpotID: "spot-1", Busyness: "moderate", Noise: "chatter", WifiSpeed: "fast",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, record.ID)
	assert.Equal(t, "spot-1", record.SpotID)
	assert.False(t, record.CreatedAt.IsZero())
	require.Len(t, repo.created, 1)
	assert.Equal(t, []string{"spot-1"}, enq.spotIDs)
}

func TestSubmitRejectsUnknownBusyness(t *testing.T) {
	svc := &DefaultCheckInService{Repo: &mockCheckInRepo{}, Store: &stubOccupancyStore{}}

	_, err := svc.Submit(context.Background(), CheckInInput{SpotID: "spot-1", Busyness: "extremely"})
	require.Error(t, err)
}

func TestRecomputeOccupancyAveragesRecentCheckIns(t *testing.T) {
	repo := &mockCheckInRepo{recent: []models.CheckIn{
		{SpotID: "spot-1", Busyness: "empty"},
		{SpotID: "spot-1", Busyness: "packed"},
		{SpotID: "spot-1", Busyness: "moderate"},
		{SpotID: "spot-1", Busyness: "mystery"}, // ignored
	}}
	store := &stubOccupancyStore{}
	svc := &DefaultCheckInService{Repo: repo, Store: store}

	snapshot, err := svc.RecomputeOccupancy(context.Background(), "spot-1")
	require.NoError(t, err)
	assert.Equal(t, 3, snapshot.SampleSize)
	assert.Equal(t, (10+90+50)/3, snapshot.Occupancy)
	// The snapshot was cached for subsequent reads.
	cached, _ := store.Get(context.Background(), "spot-1")
	require.NotNil(t, cached)
	assert.Equal(t, snapshot.Occupancy, cached.Occupancy)
}

func TestRecomputeOccupancyNoSamples(t *testing.T) {
	svc := &DefaultCheckInService{Repo: &mockCheckInRepo{}, Store: &stubOccupancyStore{}}

	snapshot, err := svc.RecomputeOccupancy(context.Background(), "spot-9")
	require.NoError(t, err)
	assert.Equal(t, 0, snapshot.SampleSize)
	assert.Equal(t, 0, snapshot.Occupancy)
}

func TestOccupancyServesCachedSnapshot(t *testing.T) {
	repo := &mockCheckInRepo{recent: []models.CheckIn{{SpotID: "spot-1", Busyness: "packed"}}}
	store := &stubOccupancyStore{snapshots: map[string]models.OccupancySnapshot{
		"spot-1": {SpotID: "spot-1", Occupancy: 42, SampleSize: 7},
	}}
	svc := &DefaultCheckInService{Repo: repo, Store: store}

	snapshot, err := svc.Occupancy(context.Background(), "spot-1")
	require.NoError(t, err)
	assert.Equal(t, 42, snapshot.Occupancy)
}
