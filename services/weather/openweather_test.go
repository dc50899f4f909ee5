package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentConditionsParsesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/weather", r.URL.Path)
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"weather": [{"main": "Rain", "description": "light rain"}],
			"main": {"temp": 21.5, "humidity": 78}
		}`))
	}))
	defer srv.Close()

	provider := NewOpenWeatherProvider("test-key", srv.URL, nil)
	obs, err := provider.CurrentConditions(context.Background(), 25.7492, -80.2635)
	require.NoError(t, err)
	assert.Equal(t, "Rain", obs.Condition)
	assert.Equal(t, "light rain", obs.Description)
	assert.Equal(t, 21.5, obs.TempC)
	assert.Equal(t, 78, obs.Humidity)
}

func TestCurrentConditionsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	provider := NewOpenWeatherProvider("bad-key", srv.URL, nil)
	_, err := provider.CurrentConditions(context.Background(), 0, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestCurrentConditionsEmptyConditions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"weather": [], "main": {"temp": 0, "humidity": 0}}`))
	}))
	defer srv.Close()

	provider := NewOpenWeatherProvider("k", srv.URL, nil)
	_, err := provider.CurrentConditions(context.Background(), 0, 0)
	require.Error(t, err)
}
