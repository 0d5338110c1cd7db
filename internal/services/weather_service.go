package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"lifehub/internal/config"
	"lifehub/internal/dto"
	"lifehub/internal/models"
)

const weatherServiceName = "openweathermap"

var (
	errWeatherNotConfigured = errors.New("weather API key not configured")
	errWeatherIncomplete    = errors.New("weather response missing fields")
)

// WeatherService looks up current conditions. Every failure degrades to the
// placeholder forecast.
type WeatherService struct {
	config      config.WeatherConfig
	client      *http.Client
	breaker     CircuitBreakerInterface
	metrics     MetricsRecorderInterface
	auditLogger AuditLoggerInterface
	logger      *slog.Logger
}

func NewWeatherService(
	cfg config.WeatherConfig,
	client *http.Client,
	breaker CircuitBreakerInterface,
	metrics MetricsRecorderInterface,
	auditLogger AuditLoggerInterface,
	logger *slog.Logger,
) WeatherServiceInterface {
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	return &WeatherService{
		config:      cfg,
		client:      client,
		breaker:     breaker,
		metrics:     metrics,
		auditLogger: auditLogger,
		logger:      logger,
	}
}

func (s *WeatherService) Current(ctx context.Context, city string) models.Weather {
	if s.config.APIKey == "" {
		s.recordOutcome("not_configured")
		return models.PlaceholderWeather(city)
	}

	if s.breaker.IsOpen() {
		s.recordOutcome("circuit_open")
		return models.PlaceholderWeather(city)
	}

	start := time.Now()
	weather, err := s.fetch(ctx, city)
	s.metrics.RecordProcessingTime(MetricWeatherDuration, time.Since(start))

	if err != nil {
		s.breaker.RecordFailure()
		s.recordOutcome("error")
		s.auditLogger.LogWeatherLookupFailed(ctx, city, err.Error())
		return models.PlaceholderWeather(city)
	}

	s.breaker.RecordSuccess()
	s.recordOutcome("success")
	return weather
}

func (s *WeatherService) buildRequest(ctx context.Context, city string) (*http.Request, error) {
	query := url.Values{}
	query.Set("q", city)
	query.Set("appid", s.config.APIKey)
	query.Set("units", "metric")
	query.Set("lang", "ja")

	endpoint := strings.TrimRight(s.config.BaseURL, "/") + "/data/2.5/weather?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (s *WeatherService) fetch(ctx context.Context, city string) (models.Weather, error) {
	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	req, err := s.buildRequest(ctx, city)
	if err != nil {
		return models.Weather{}, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return models.Weather{}, fmt.Errorf("weather request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return models.Weather{}, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return models.Weather{}, fmt.Errorf("unexpected weather response (%d): %s", resp.StatusCode, string(body))
	}

	var payload dto.OpenWeatherResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return models.Weather{}, fmt.Errorf("decode weather response: %w", err)
	}
	if len(payload.Weather) == 0 || payload.Main.Temp == nil {
		return models.Weather{}, errWeatherIncomplete
	}

	condition := payload.Weather[0]
	return models.Weather{
		City:        city,
		Condition:   condition.Description,
		Temperature: strconv.FormatInt(int64(math.Round(*payload.Main.Temp)), 10),
		IconURL:     fmt.Sprintf("%s/%s@2x.png", strings.TrimRight(s.config.IconBaseURL, "/"), condition.Icon),
	}, nil
}

func (s *WeatherService) recordOutcome(outcome string) {
	s.metrics.IncrementCounter(MetricWeatherLookup, map[string]string{"outcome": outcome})
	if outcome != "success" {
		s.logger.Debug("weather placeholder served", "outcome", outcome)
	}
}

// WeatherBreakerHooks reports breaker transitions to logs and metrics.
func WeatherBreakerHooks(auditLogger AuditLoggerInterface, metrics MetricsRecorderInterface) func(from, to models.CircuitBreakerState) {
	return func(from, to models.CircuitBreakerState) {
		auditLogger.LogCircuitBreakerStateChange(context.Background(), weatherServiceName, from.String(), to.String())
		metrics.RecordGauge(MetricCircuitBreakerState, float64(to), map[string]string{"service": weatherServiceName})
	}
}
