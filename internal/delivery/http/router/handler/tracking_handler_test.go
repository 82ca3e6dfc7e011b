package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"shiplog/internal/delivery/http/validator"
	"shiplog/internal/domain/entity"
	mockUsecase "shiplog/internal/mocks/usecase"
	"shiplog/internal/usecase"
	"shiplog/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTrackingHandler(uc usecase.TrackingUsecase) *TrackingHandler {
	return &TrackingHandler{
		trackingUC: uc,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func newTrackingContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestTrackingHandler_GetStatus(t *testing.T) {
	t.Parallel()

	uc := mockUsecase.NewMockTrackingUsecase(t)
	uc.EXPECT().Status().Return(entity.TrackingState{
		Mode:            entity.TrackingModeTracking,
		CurrentVoyageID: uuid.New(),
		GpsHealth:       entity.GpsHealthLocked,
		StartedAt:       time.Now(),
	}).Once()

	c, rec := newTrackingContext(http.MethodGet, "/tracking/status", "")

	require.NoError(t, newTrackingHandler(uc).GetStatus(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"tracking"`)
}

func TestTrackingHandler_Start(t *testing.T) {
	t.Parallel()

	uc := mockUsecase.NewMockTrackingUsecase(t)
	uc.EXPECT().Start(mock.Anything, usecase.StartInput{Resolution: usecase.StartResolutionNew}).
		Return(entity.TrackingState{Mode: entity.TrackingModeTracking, CurrentVoyageID: uuid.New()}, nil).
		Once()

	c, rec := newTrackingContext(http.MethodPost, "/tracking/start", `{"resolution":"new"}`)

	require.NoError(t, newTrackingHandler(uc).Start(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTrackingHandler_Start_ChoiceRequired(t *testing.T) {
	t.Parallel()

	uc := mockUsecase.NewMockTrackingUsecase(t)
	uc.EXPECT().Start(mock.Anything, usecase.StartInput{}).
		Return(entity.TrackingState{Mode: entity.TrackingModeIdle}, impl.ErrVoyageChoiceRequired).
		Once()

	c, rec := newTrackingContext(http.MethodPost, "/tracking/start", `{}`)

	require.NoError(t, newTrackingHandler(uc).Start(c))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "VOYAGE_CHOICE_REQUIRED")
}

func TestTrackingHandler_Start_InvalidResolution(t *testing.T) {
	t.Parallel()

	uc := mockUsecase.NewMockTrackingUsecase(t)

	c, rec := newTrackingContext(http.MethodPost, "/tracking/start", `{"resolution":"maybe"}`)

	require.NoError(t, newTrackingHandler(uc).Start(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "Start", mock.Anything, mock.Anything)
}

func TestTrackingHandler_Stop_WithoutConfirmation(t *testing.T) {
	t.Parallel()

	uc := mockUsecase.NewMockTrackingUsecase(t)
	uc.EXPECT().Stop(mock.Anything, false).
		Return(entity.TrackingState{Mode: entity.TrackingModeTracking}, impl.ErrStopConfirmationRequired).
		Once()

	c, rec := newTrackingContext(http.MethodPost, "/tracking/stop", `{"confirm":false}`)

	require.NoError(t, newTrackingHandler(uc).Stop(c))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "STOP_CONFIRMATION_REQUIRED")
}

func TestTrackingHandler_Pause_WhileIdle(t *testing.T) {
	t.Parallel()

	uc := mockUsecase.NewMockTrackingUsecase(t)
	uc.EXPECT().Pause(mock.Anything).
		Return(entity.TrackingState{Mode: entity.TrackingModeIdle}, impl.ErrNotTracking).
		Once()

	c, rec := newTrackingContext(http.MethodPost, "/tracking/pause", "")

	require.NoError(t, newTrackingHandler(uc).Pause(c))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_TRACKING")
}

func TestTrackingHandler_RecorderFailureMapsToBadGateway(t *testing.T) {
	t.Parallel()

	uc := mockUsecase.NewMockTrackingUsecase(t)
	uc.EXPECT().SetRapidSampling(mock.Anything, true).
		Return(entity.TrackingState{Mode: entity.TrackingModeTracking}, errors.New("recorder unreachable")).
		Once()

	c, rec := newTrackingContext(http.MethodPost, "/tracking/rapid-sampling", `{"enabled":true}`)

	require.NoError(t, newTrackingHandler(uc).SetRapidSampling(c))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "RECORDER_FAILED")
}
