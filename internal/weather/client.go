// Package weather looks up current conditions for a destination string
// against an OpenWeatherMap-compatible API.
package weather

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/packlight/packlight-cli/internal/logger"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://api.openweathermap.org/data/2.5"

// ErrUnavailable is returned for any network failure, non-200 response, or
// unknown location. Callers render a generic could-not-load state; the error
// never blocks other functionality.
var ErrUnavailable = errors.New("weather data not available")

// Report is a current-conditions observation for a destination.
type Report struct {
	TempC         float64
	ConditionCode int
	Description   string
	WindSpeed     float64
	Humidity      int
}

type apiResponse struct {
	Weather []struct {
		ID          int    `json:"id"`
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Current fetches the current weather for a destination.
func (c *Client) Current(destination string) (Report, error) {
	if destination == "" {
		return Report{}, fmt.Errorf("%w: empty destination", ErrUnavailable)
	}

	params := url.Values{}
	params.Set("q", destination)
	params.Set("units", "metric")
	params.Set("appid", c.apiKey)

	resp, err := c.client.Get(c.baseURL + "/weather?" + params.Encode())
	if err != nil {
		logger.Warn("Weather request failed", "destination", destination, "error", err)
		return Report{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Warn("Weather request rejected", "destination", destination, "status", resp.StatusCode)
		return Report{}, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Report{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if len(body.Weather) == 0 {
		return Report{}, fmt.Errorf("%w: empty response", ErrUnavailable)
	}

	return Report{
		TempC:         body.Main.Temp,
		ConditionCode: body.Weather[0].ID,
		Description:   body.Weather[0].Description,
		WindSpeed:     body.Wind.Speed,
		Humidity:      body.Main.Humidity,
	}, nil
}
