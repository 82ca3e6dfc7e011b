package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shiplog/internal/domain/entity"
	mockUsecase "shiplog/internal/mocks/usecase"
	"shiplog/internal/usecase"
	"shiplog/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLogbookHandler(uc usecase.LogbookUsecase) *LogbookHandler {
	return &LogbookHandler{
		logbookUC: uc,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func newTestContext(method, target string, body io.Reader) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestLogbookHandler_GetSnapshot(t *testing.T) {
	t.Parallel()

	uc := mockUsecase.NewMockLogbookUsecase(t)
	uc.EXPECT().Snapshot().Return(&usecase.Snapshot{
		Entries:     []*entity.LogEntry{{ID: uuid.New(), Timestamp: time.Now()}},
		RefreshedAt: time.Now(),
	}).Once()

	c, rec := newTestContext(http.MethodGet, "/logbook", nil)

	require.NoError(t, newLogbookHandler(uc).GetSnapshot(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"entries"`)
}

func TestLogbookHandler_GetVoyages(t *testing.T) {
	t.Parallel()

	voyageID := uuid.New()
	uc := mockUsecase.NewMockLogbookUsecase(t)
	uc.EXPECT().Snapshot().Return(&usecase.Snapshot{
		Voyages: []*entity.VoyageGroup{{VoyageID: voyageID}},
	}).Once()

	c, rec := newTestContext(http.MethodGet, "/logbook/voyages", nil)

	require.NoError(t, newLogbookHandler(uc).GetVoyages(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), voyageID.String())
}

func TestLogbookHandler_GetArchivedVoyages(t *testing.T) {
	t.Parallel()

	uc := mockUsecase.NewMockLogbookUsecase(t)
	uc.EXPECT().Snapshot().Return(&usecase.Snapshot{
		Voyages:  []*entity.VoyageGroup{{VoyageID: uuid.New()}},
		Archived: []*entity.VoyageGroup{},
	}).Once()

	c, rec := newTestContext(http.MethodGet, "/logbook/voyages/archived", nil)

	require.NoError(t, newLogbookHandler(uc).GetArchivedVoyages(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestLogbookHandler_GetCareer(t *testing.T) {
	t.Parallel()

	uc := mockUsecase.NewMockLogbookUsecase(t)
	uc.EXPECT().Snapshot().Return(&usecase.Snapshot{
		Career: entity.CareerTotals{VoyageCount: 4, DistanceNM: 120.5},
	}).Once()

	c, rec := newTestContext(http.MethodGet, "/logbook/career", nil)

	require.NoError(t, newLogbookHandler(uc).GetCareer(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"voyage_count":4`)
}

func TestLogbookHandler_Refresh_AllSourcesDown(t *testing.T) {
	t.Parallel()

	uc := mockUsecase.NewMockLogbookUsecase(t)
	uc.EXPECT().Refresh(mock.Anything).Return(nil, impl.ErrAllSourcesFailed).Once()

	c, rec := newTestContext(http.MethodPost, "/logbook/refresh", nil)

	require.NoError(t, newLogbookHandler(uc).Refresh(c))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "LOGBOOK_UNAVAILABLE")
}

func TestLogbookHandler_GetEntries_PassesFilter(t *testing.T) {
	t.Parallel()

	voyageID := uuid.New()
	uc := mockUsecase.NewMockLogbookUsecase(t)
	uc.EXPECT().FilterEntries(mock.MatchedBy(func(filter usecase.EntryFilter) bool {
		return filter.EntryType != nil && *filter.EntryType == entity.EntryTypeManual &&
			filter.VoyageID != nil && *filter.VoyageID == voyageID &&
			filter.Query == "harbor"
	})).Return([]*entity.LogEntry{}).Once()

	target := "/logbook/entries?entry_type=manual&voyage_id=" + voyageID.String() + "&query=harbor"
	c, rec := newTestContext(http.MethodGet, target, nil)

	require.NoError(t, newLogbookHandler(uc).GetEntries(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogbookHandler_GetEntries_InvalidEntryType(t *testing.T) {
	t.Parallel()

	uc := mockUsecase.NewMockLogbookUsecase(t)

	c, rec := newTestContext(http.MethodGet, "/logbook/entries?entry_type=bogus", nil)

	require.NoError(t, newLogbookHandler(uc).GetEntries(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "FilterEntries", mock.Anything)
}

func TestLogbookHandler_DeleteEntry_NotFound(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	uc := mockUsecase.NewMockLogbookUsecase(t)
	uc.EXPECT().DeleteEntry(mock.Anything, id).Return(impl.ErrEntryNotFound).Once()

	c, rec := newTestContext(http.MethodDelete, "/logbook/entries/"+id.String(), nil)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	require.NoError(t, newLogbookHandler(uc).DeleteEntry(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "ENTRY_NOT_FOUND")
}

func TestLogbookHandler_DeleteEntry_InvalidID(t *testing.T) {
	t.Parallel()

	uc := mockUsecase.NewMockLogbookUsecase(t)

	c, rec := newTestContext(http.MethodDelete, "/logbook/entries/not-a-uuid", nil)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, newLogbookHandler(uc).DeleteEntry(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "DeleteEntry", mock.Anything, mock.Anything)
}

func TestLogbookHandler_ArchiveVoyage_NotFound(t *testing.T) {
	t.Parallel()

	voyageID := uuid.New()
	uc := mockUsecase.NewMockLogbookUsecase(t)
	uc.EXPECT().ArchiveVoyage(mock.Anything, voyageID).Return(impl.ErrVoyageNotFound).Once()

	c, rec := newTestContext(http.MethodPost, "/logbook/voyages/"+voyageID.String()+"/archive", nil)
	c.SetParamNames("id")
	c.SetParamValues(voyageID.String())

	require.NoError(t, newLogbookHandler(uc).ArchiveVoyage(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "VOYAGE_NOT_FOUND")
}
