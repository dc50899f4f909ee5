package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-redis/redis/v8"

	"campusspots/models"
	"campusspots/utils"
)

// OpenWeatherProvider implements Provider against the OpenWeatherMap
// current-conditions API. Observations are cached in Redis so a burst of
// recommendation requests does not hammer the upstream API.
type OpenWeatherProvider struct {
	APIKey  string
	BaseURL string
	Client  *http.Client
	Cache   *redis.Client
}

// NewOpenWeatherProvider builds a provider with a sane request timeout.
func NewOpenWeatherProvider(apiKey, baseURL string, cache *redis.Client) *OpenWeatherProvider {
	return &OpenWeatherProvider{
		APIKey:  apiKey,
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 10 * time.Second},
		Cache:   cache,
	}
}

// openWeatherResponse mirrors the fields we read from the upstream payload.
type openWeatherResponse struct {
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
}

func (p *OpenWeatherProvider) CurrentConditions(ctx context.Context, lat, lon float64) (models.WeatherObservation, error) {
	if p.Cache != nil {
		if cached, err := p.Cache.Get(ctx, utils.WeatherCacheKey).Result(); err == nil {
			var obs models.WeatherObservation
			if err := json.Unmarshal([]byte(cached), &obs); err == nil {
				return obs, nil
			}
		}
	}

	endpoint := fmt.Sprintf("%s/weather?lat=%v&lon=%v&units=metric&appid=%s",
		p.BaseURL, lat, lon, url.QueryEscape(p.APIKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return models.WeatherObservation{}, fmt.Errorf("failed to build weather request: %w", err)
	}
	resp, err := p.Client.Do(req)
	if err != nil {
		return models.WeatherObservation{}, fmt.Errorf("weather fetch failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return models.WeatherObservation{}, fmt.Errorf("weather fetch failed: status %d", resp.StatusCode)
	}

	var payload openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return models.WeatherObservation{}, fmt.Errorf("failed to decode weather response: %w", err)
	}
	if len(payload.Weather) == 0 {
		return models.WeatherObservation{}, fmt.Errorf("weather response missing conditions")
	}

	obs := models.WeatherObservation{
		Condition:   payload.Weather[0].Main,
		Description: payload.Weather[0].Description,
		TempC:       payload.Main.Temp,
		Humidity:    payload.Main.Humidity,
	}

	if p.Cache != nil {
		if data, err := json.Marshal(obs); err == nil {
			p.Cache.Set(ctx, utils.WeatherCacheKey, data, utils.WeatherCacheTTL)
		}
	}
	return obs, nil
}
