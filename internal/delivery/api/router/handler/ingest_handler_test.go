package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"shiplog/internal/delivery/api/validator"
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

func newIngestHandler(uc usecase.LogbookUsecase) *IngestHandler {
	return &IngestHandler{
		logbookUC: uc,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func newIngestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
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

func batchBody(id uuid.UUID) string {
	return `{"entries":[{"id":"` + id.String() + `","timestamp":"` +
		time.Now().UTC().Format(time.RFC3339) + `","entry_type":"auto"}]}`
}

func TestIngestHandler_IngestBatch(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	uc := mockUsecase.NewMockLogbookUsecase(t)
	uc.EXPECT().IngestEntries(mock.Anything, mock.MatchedBy(func(entries []*entity.LogEntry) bool {
		return len(entries) == 1 && entries[0].ID == id
	})).Return(nil).Once()

	c, rec := newIngestContext(http.MethodPost, "/internal/entries/batch", batchBody(id))

	require.NoError(t, newIngestHandler(uc).IngestBatch(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"accepted":1`)
}

func TestIngestHandler_IngestBatch_MissingID(t *testing.T) {
	t.Parallel()

	uc := mockUsecase.NewMockLogbookUsecase(t)
	uc.EXPECT().IngestEntries(mock.Anything, mock.Anything).Return(impl.ErrEntryMissingID).Once()

	body := `{"entries":[{"timestamp":"2026-07-10T08:00:00Z","entry_type":"auto"}]}`
	c, rec := newIngestContext(http.MethodPost, "/internal/entries/batch", body)

	require.NoError(t, newIngestHandler(uc).IngestBatch(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "ENTRY_ID_REQUIRED")
}

func TestIngestHandler_IngestBatch_EmptyBatch(t *testing.T) {
	t.Parallel()

	uc := mockUsecase.NewMockLogbookUsecase(t)

	c, rec := newIngestContext(http.MethodPost, "/internal/entries/batch", `{"entries":[]}`)

	require.NoError(t, newIngestHandler(uc).IngestBatch(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "IngestEntries", mock.Anything, mock.Anything)
}

func TestIngestHandler_EnqueueOffline(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	uc := mockUsecase.NewMockLogbookUsecase(t)
	uc.EXPECT().EnqueueOffline(mock.Anything, mock.Anything).Return(nil).Once()

	c, rec := newIngestContext(http.MethodPost, "/internal/queue/entries", batchBody(id))

	require.NoError(t, newIngestHandler(uc).EnqueueOffline(c))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Contains(t, rec.Body.String(), `"queued":1`)
}

func TestIngestHandler_DrainQueue(t *testing.T) {
	t.Parallel()

	uc := mockUsecase.NewMockLogbookUsecase(t)
	uc.EXPECT().DrainOfflineQueue(mock.Anything).Return(3, nil).Once()

	c, rec := newIngestContext(http.MethodPost, "/internal/queue/drain", "")

	require.NoError(t, newIngestHandler(uc).DrainQueue(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"drained":3`)
}

func TestIngestHandler_DrainQueue_Failure(t *testing.T) {
	t.Parallel()

	uc := mockUsecase.NewMockLogbookUsecase(t)
	uc.EXPECT().DrainOfflineQueue(mock.Anything).Return(0, errors.New("queue unreachable")).Once()

	c, _ := newIngestContext(http.MethodPost, "/internal/queue/drain", "")

	err := newIngestHandler(uc).DrainQueue(c)

	require.Error(t, err)
}
