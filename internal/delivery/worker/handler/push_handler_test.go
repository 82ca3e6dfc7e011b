package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shiplog/internal/domain/service"
	mockUsecase "shiplog/internal/mocks/usecase"
	"shiplog/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPushHandler(uc usecase.LogbookUsecase) *PushHandler {
	return &PushHandler{
		verifyPushAuth: false,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		logbookUC:      uc,
	}
}

func pushBody(t *testing.T, event *service.VoyageEvent) string {
	t.Helper()

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	msg := map[string]any{
		"message": map[string]any{
			"data":      base64.StdEncoding.EncodeToString(payload),
			"messageId": "1",
		},
		"subscription": "projects/local/subscriptions/voyage-events-sub",
	}
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func doPush(t *testing.T, handler *PushHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.HandlePush(e.NewContext(req, rec)))

	return rec
}

func TestPushHandler_VoyageStoppedDrainsQueue(t *testing.T) {
	t.Parallel()

	uc := mockUsecase.NewMockLogbookUsecase(t)
	uc.EXPECT().DrainOfflineQueue(mock.Anything).Return(2, nil).Once()
	uc.EXPECT().ArchiveStale(mock.Anything).Once()

	event := &service.VoyageEvent{
		EventType: service.VoyageEventStopped,
		VoyageID:  uuid.New().String(),
	}

	rec := doPush(t, newPushHandler(uc), pushBody(t, event))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_DrainFailureTriggersRetry(t *testing.T) {
	t.Parallel()

	uc := mockUsecase.NewMockLogbookUsecase(t)
	uc.EXPECT().DrainOfflineQueue(mock.Anything).Return(0, errors.New("store down")).Once()

	event := &service.VoyageEvent{
		EventType: service.VoyageEventStopped,
		VoyageID:  uuid.New().String(),
	}

	rec := doPush(t, newPushHandler(uc), pushBody(t, event))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	uc.AssertNotCalled(t, "ArchiveStale", mock.Anything)
}

func TestPushHandler_BookkeepingEventsAreAcked(t *testing.T) {
	t.Parallel()

	uc := mockUsecase.NewMockLogbookUsecase(t)

	event := &service.VoyageEvent{
		EventType: service.VoyageEventArchived,
		VoyageID:  uuid.New().String(),
	}

	rec := doPush(t, newPushHandler(uc), pushBody(t, event))

	assert.Equal(t, http.StatusOK, rec.Code)
	uc.AssertNotCalled(t, "DrainOfflineQueue", mock.Anything)
}

func TestPushHandler_UnknownEventIsAcked(t *testing.T) {
	t.Parallel()

	uc := mockUsecase.NewMockLogbookUsecase(t)

	event := &service.VoyageEvent{EventType: "voyage_teleported"}

	rec := doPush(t, newPushHandler(uc), pushBody(t, event))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_MalformedDataIsRejected(t *testing.T) {
	t.Parallel()

	uc := mockUsecase.NewMockLogbookUsecase(t)

	body := `{"message":{"data":"not base64!!","messageId":"1"},"subscription":"s"}`
	rec := doPush(t, newPushHandler(uc), body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
