// Package recorder implements the HTTP client for the onboard GPS recorder agent.
package recorder

import (
	"context"
	"net/http"

	"shiplog/config"
	"shiplog/internal/domain/entity"
	"shiplog/internal/domain/service"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type recorderClient struct {
	client *resty.Client
}

type startRequest struct {
	ResetVoyage      bool   `json:"reset_voyage"`
	ContinueVoyageID string `json:"continue_voyage_id,omitempty"`
}

type rapidSamplingRequest struct {
	Enabled bool `json:"enabled"`
}

type gpsHealthResponse struct {
	Status string `json:"status"`
}

// NewRecorderClient creates the HTTP client for the recorder agent.
// Only the read-only health poll is retried; lifecycle commands are not
// idempotent from the recorder's point of view.
func NewRecorderClient(cfg *config.Config) service.RecorderService {
	client := resty.New().
		SetBaseURL(cfg.Recorder.BaseURL).
		SetTimeout(cfg.Recorder.Timeout).
		SetRetryCount(cfg.Recorder.RetryCount).
		AddRetryCondition(func(response *resty.Response, _ error) bool {
			return response != nil && response.Request.Method == http.MethodGet &&
				response.StatusCode() >= http.StatusInternalServerError
		})

	return &recorderClient{client: client}
}

// StartRecording begins automatic sampling on the recorder agent.
func (c *recorderClient) StartRecording(ctx context.Context, resetVoyage bool, continueVoyageID uuid.UUID) error {
	body := startRequest{ResetVoyage: resetVoyage}
	if continueVoyageID != uuid.Nil {
		body.ContinueVoyageID = continueVoyageID.String()
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(body).
		Post("/recording/start")
	if err != nil {
		return errors.Wrap(err, "failed to call recorder start")
	}
	if resp.IsError() {
		return errors.Errorf("recorder start rejected: %s", resp.Status())
	}

	return nil
}

// PauseRecording suspends sampling without closing the voyage.
func (c *recorderClient) PauseRecording(ctx context.Context) error {
	resp, err := c.client.R().
		SetContext(ctx).
		Post("/recording/pause")
	if err != nil {
		return errors.Wrap(err, "failed to call recorder pause")
	}
	if resp.IsError() {
		return errors.Errorf("recorder pause rejected: %s", resp.Status())
	}

	return nil
}

// StopRecording finalizes the current voyage on the recorder agent.
func (c *recorderClient) StopRecording(ctx context.Context) error {
	resp, err := c.client.R().
		SetContext(ctx).
		Post("/recording/stop")
	if err != nil {
		return errors.Wrap(err, "failed to call recorder stop")
	}
	if resp.IsError() {
		return errors.Errorf("recorder stop rejected: %s", resp.Status())
	}

	return nil
}

// SetRapidSampling toggles the high-frequency capture mode.
func (c *recorderClient) SetRapidSampling(ctx context.Context, enabled bool) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(rapidSamplingRequest{Enabled: enabled}).
		Post("/recording/rapid-sampling")
	if err != nil {
		return errors.Wrap(err, "failed to call recorder rapid sampling")
	}
	if resp.IsError() {
		return errors.Errorf("recorder rapid sampling rejected: %s", resp.Status())
	}

	return nil
}

// GpsHealth reports the freshness of the recorder's GPS fix. An unknown or
// unreachable recorder reads as no fix rather than an error state the caller
// has to special-case.
func (c *recorderClient) GpsHealth(ctx context.Context) (entity.GpsHealth, error) {
	var health gpsHealthResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&health).
		Get("/health/gps")
	if err != nil {
		return entity.GpsHealthNone, errors.Wrap(err, "failed to poll recorder gps health")
	}
	if resp.IsError() {
		return entity.GpsHealthNone, errors.Errorf("recorder gps health rejected: %s", resp.Status())
	}

	parsed := entity.GpsHealth(health.Status)
	if !parsed.IsValid() {
		return entity.GpsHealthNone, nil
	}

	return parsed, nil
}
