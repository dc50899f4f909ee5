package handlers

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	studyspotRepo "campusspots/database/repository/studyspot"
	"campusspots/models"
	"campusspots/services/search"
)

type stubStudySpotRepo struct {
	spots []models.StudySpot
}

func (s *stubStudySpotRepo) GetByID(id string) (*models.StudySpot, error) {
	for i := range s.spots {
		if s.spots[i].ID == id {
			return &s.spots[i], nil
		}
	}
	return nil, nil
}

func (s *stubStudySpotRepo) GetAll() ([]models.StudySpot, error) {
	return s.spots, nil
}

func (s *stubStudySpotRepo) SearchByBuilding(building string) ([]models.StudySpot, error) {
	if building == "" {
		return s.spots, nil
	}
	out := make([]models.StudySpot, 0, len(s.spots))
	for _, spot := range s.spots {
		if strings.EqualFold(spot.Location.Building, building) {
			out = append(out, spot)
		}
	}
	return out, nil
}

func (s *stubStudySpotRepo) InsertMany(spots []models.StudySpot) error {
	s.spots = append(s.spots, spots...)
	return nil
}

func newStudySpotRouter(repo studyspotRepo.StudySpotRepository, cache ResultCache) *gin.Engine {
	gin.SetMode(gin.TestMode)
	filter := search.NewDefaultSearchService(rand.New(rand.NewSource(1)))
	h := NewStudySpotHandler(repo, filter, cache, rand.New(rand.NewSource(1)))

	r := gin.New()
	r.GET("/api/studyspots", h.ListStudySpotsHandler)
	r.GET("/api/studyspots/random", h.RandomStudySpotHandler)
	r.POST("/api/studyspots/search", h.SearchStudySpotsHandler)
	return r
}

func sampleSpots() []models.StudySpot {
	return []models.StudySpot{
		{ID: "sp-1", Name: "The Stacks", Location: models.SpotLocation{Building: "Richter"}, Indoor: true,
			Amenities: &models.Amenities{Whiteboard: true, PowerOutlets: "many", Quiet: "high"}},
		{ID: "sp-2", Name: "First Floor Lounge", Location: models.SpotLocation{Building: "Richter"}, Indoor: true,
			Amenities: &models.Amenities{PowerOutlets: "few", Quiet: "low"}},
		{ID: "sp-3", Name: "Lakeside Patio", Location: models.SpotLocation{Building: "Lakeside"}, Indoor: false},
	}
}

func TestSearchStudySpotsHandler(t *testing.T) {
	cache := newMemoryResultCache()
	r := newStudySpotRouter(&stubStudySpotRepo{spots: sampleSpots()}, cache)

	body := `{"building":"richter","attributes":["Whiteboard"],"busyness":"Quiet"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/studyspots/search", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		ResultID     string              `json:"resultId"`
		TopPick      *models.ScoredSpot  `json:"topPick"`
		OtherOptions []models.ScoredSpot `json:"otherOptions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	// Only the Stacks has a whiteboard and a high quiet level; it scores on
	// building, whiteboard, and busyness.
	require.NotNil(t, resp.TopPick)
	assert.Equal(t, "sp-1", resp.TopPick.ID)
	assert.Equal(t, 3, resp.TopPick.Score)
	assert.Empty(t, resp.OtherOptions)
	assert.NotEmpty(t, resp.ResultID)
	assert.Contains(t, cache.saved, resp.ResultID)
}

func TestSearchStudySpotsHandlerInvalidTime(t *testing.T) {
	r := newStudySpotRouter(&stubStudySpotRepo{spots: sampleSpots()}, newMemoryResultCache())

	body := `{"startTime":"noon","durationHours":2}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/studyspots/search", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListStudySpotsHandler(t *testing.T) {
	r := newStudySpotRouter(&stubStudySpotRepo{spots: sampleSpots()}, newMemoryResultCache())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/studyspots", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		StudySpots []models.StudySpot `json:"studySpots"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.StudySpots, 3)
}

func TestRandomStudySpotHandler(t *testing.T) {
	spots := sampleSpots()
	r := newStudySpotRouter(&stubStudySpotRepo{spots: spots}, newMemoryResultCache())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/studyspots/random", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		StudySpot models.StudySpot `json:"studySpot"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	ids := make([]string, 0, len(spots))
	for _, spot := range spots {
		ids = append(ids, spot.ID)
	}
	assert.Contains(t, ids, resp.StudySpot.ID)
}

func TestRandomStudySpotHandlerEmpty(t *testing.T) {
	r := newStudySpotRouter(&stubStudySpotRepo{}, newMemoryResultCache())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/studyspots/random", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
