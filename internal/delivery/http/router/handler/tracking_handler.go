package handler

import (
	"log/slog"
	"net/http"

	"shiplog/internal/delivery/http/response"
	domainerrors "shiplog/internal/domain/errors"
	"shiplog/internal/usecase"
	"shiplog/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// TrackingHandlerParams holds dependencies for TrackingHandler, injected by Fx.
type TrackingHandlerParams struct {
	fx.In

	TrackingUC usecase.TrackingUsecase
	Logger     *slog.Logger
}

// TrackingHandler holds dependencies for tracking-related handlers
type TrackingHandler struct {
	trackingUC usecase.TrackingUsecase
	logger     *slog.Logger
}

// NewTrackingHandler is the constructor for TrackingHandler
func NewTrackingHandler(params TrackingHandlerParams) *TrackingHandler {
	return &TrackingHandler{
		trackingUC: params.TrackingUC,
		logger:     params.Logger,
	}
}

// StartTrackingRequest represents the request body for starting tracking
type StartTrackingRequest struct {
	Resolution       string `json:"resolution,omitempty" validate:"omitempty,oneof=new continue"`
	ContinueVoyageID string `json:"continue_voyage_id,omitempty" validate:"omitempty,uuid"`
}

// StopTrackingRequest represents the request body for stopping tracking
type StopTrackingRequest struct {
	Confirm bool `json:"confirm"`
}

// RapidSamplingRequest represents the request body for toggling rapid sampling
type RapidSamplingRequest struct {
	Enabled bool `json:"enabled"`
}

// GetStatus returns the current tracking state.
func (h *TrackingHandler) GetStatus(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.trackingUC.Status(), "Tracking status retrieved successfully")
}

// Start begins tracking a voyage.
func (h *TrackingHandler) Start(c echo.Context) error {
	var req StartTrackingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid tracking input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := usecase.StartInput{Resolution: usecase.StartResolution(req.Resolution)}
	if req.ContinueVoyageID != "" {
		voyageID, err := uuid.Parse(req.ContinueVoyageID)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid voyage ID")
		}
		input.ContinueVoyageID = voyageID
	}

	state, err := h.trackingUC.Start(c.Request().Context(), input)
	if err != nil {
		return h.handleTrackingError(c, err)
	}

	return response.Success(c, http.StatusOK, state, "Tracking started successfully")
}

// Pause suspends tracking without ending the voyage.
func (h *TrackingHandler) Pause(c echo.Context) error {
	state, err := h.trackingUC.Pause(c.Request().Context())
	if err != nil {
		return h.handleTrackingError(c, err)
	}

	return response.Success(c, http.StatusOK, state, "Tracking paused successfully")
}

// Stop finalizes the current voyage.
func (h *TrackingHandler) Stop(c echo.Context) error {
	var req StopTrackingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid tracking input")
	}

	state, err := h.trackingUC.Stop(c.Request().Context(), req.Confirm)
	if err != nil {
		return h.handleTrackingError(c, err)
	}

	return response.Success(c, http.StatusOK, state, "Tracking stopped successfully")
}

// SetRapidSampling toggles high-frequency capture.
func (h *TrackingHandler) SetRapidSampling(c echo.Context) error {
	var req RapidSamplingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid tracking input")
	}

	state, err := h.trackingUC.SetRapidSampling(c.Request().Context(), req.Enabled)
	if err != nil {
		return h.handleTrackingError(c, err)
	}

	return response.Success(c, http.StatusOK, state, "Rapid sampling updated successfully")
}

// handleTrackingError maps tracking transition failures onto the error taxonomy.
func (h *TrackingHandler) handleTrackingError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, impl.ErrVoyageChoiceRequired):
		return response.Conflict(c, domainerrors.ErrVoyageChoiceRequired.ErrorCode(),
			domainerrors.ErrVoyageChoiceRequired.Message())
	case errors.Is(err, impl.ErrContinueVoyageRequired):
		return response.BadRequest(c, "CONTINUE_VOYAGE_REQUIRED",
			"Continuing requires the voyage to continue")
	case errors.Is(err, impl.ErrStopConfirmationRequired):
		return response.Conflict(c, domainerrors.ErrStopConfirmationRequired.ErrorCode(),
			domainerrors.ErrStopConfirmationRequired.Message())
	case errors.Is(err, impl.ErrNotTracking):
		return response.Conflict(c, domainerrors.ErrNotTracking.ErrorCode(),
			domainerrors.ErrNotTracking.Message())
	case errors.Is(err, impl.ErrAlreadyTracking):
		return response.Conflict(c, domainerrors.ErrAlreadyTracking.ErrorCode(),
			domainerrors.ErrAlreadyTracking.Message())
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	// The optimistic transition was already reverted; report the recorder
	// failure without leaking transport details.
	h.logger.Error("Tracking command failed", slog.Any("error", err))

	return response.Error(c, domainerrors.ErrRecorderFailed.HTTPCode(),
		domainerrors.ErrRecorderFailed.ErrorCode(),
		domainerrors.ErrRecorderFailed.Message(), "")
}
