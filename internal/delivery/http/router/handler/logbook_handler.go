package handler

import (
	"log/slog"
	"net/http"

	"shiplog/internal/delivery/http/response"
	"shiplog/internal/domain/entity"
	domainerrors "shiplog/internal/domain/errors"
	"shiplog/internal/usecase"
	"shiplog/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// LogbookHandlerParams holds dependencies for LogbookHandler, injected by Fx.
type LogbookHandlerParams struct {
	fx.In

	LogbookUC usecase.LogbookUsecase
	Logger    *slog.Logger
}

// LogbookHandler holds dependencies for logbook-related handlers
type LogbookHandler struct {
	logbookUC usecase.LogbookUsecase
	logger    *slog.Logger
}

// NewLogbookHandler is the constructor for LogbookHandler
func NewLogbookHandler(params LogbookHandlerParams) *LogbookHandler {
	return &LogbookHandler{
		logbookUC: params.LogbookUC,
		logger:    params.Logger,
	}
}

// GetSnapshot returns the latest merged logbook snapshot.
func (h *LogbookHandler) GetSnapshot(c echo.Context) error {
	snapshot := h.logbookUC.Snapshot()

	return response.Success(c, http.StatusOK, snapshot, "Logbook snapshot retrieved successfully")
}

// GetVoyages returns the active voyage groups in canonical display order.
func (h *LogbookHandler) GetVoyages(c echo.Context) error {
	snapshot := h.logbookUC.Snapshot()

	return response.Success(c, http.StatusOK, snapshot.Voyages, "Voyages retrieved successfully")
}

// GetArchivedVoyages returns voyage groups flagged inactive.
func (h *LogbookHandler) GetArchivedVoyages(c echo.Context) error {
	snapshot := h.logbookUC.Snapshot()

	return response.Success(c, http.StatusOK, snapshot.Archived, "Archived voyages retrieved successfully")
}

// GetCareer returns lifetime totals across every voyage.
func (h *LogbookHandler) GetCareer(c echo.Context) error {
	snapshot := h.logbookUC.Snapshot()

	return response.Success(c, http.StatusOK, snapshot.Career, "Career totals retrieved successfully")
}

// Refresh forces a re-run of the merge pipeline and returns the new snapshot.
func (h *LogbookHandler) Refresh(c echo.Context) error {
	snapshot, err := h.logbookUC.Refresh(c.Request().Context())
	if err != nil {
		if errors.Is(err, impl.ErrAllSourcesFailed) {
			return response.Error(c, http.StatusServiceUnavailable,
				domainerrors.ErrLogbookUnavailable.ErrorCode(),
				domainerrors.ErrLogbookUnavailable.Message(), "")
		}

		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, snapshot, "Logbook refreshed successfully")
}

// GetEntries returns entries filtered by type, voyage and free-text query.
func (h *LogbookHandler) GetEntries(c echo.Context) error {
	filter := usecase.EntryFilter{Query: c.QueryParam("query")}

	if raw := c.QueryParam("entry_type"); raw != "" {
		entryType := entity.EntryType(raw)
		if !entryType.IsValid() {
			return response.BadRequest(c, "INVALID_ENTRY_TYPE", "Unknown entry type")
		}
		filter.EntryType = &entryType
	}

	if raw := c.QueryParam("voyage_id"); raw != "" {
		voyageID, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid voyage ID")
		}
		filter.VoyageID = &voyageID
	}

	entries := h.logbookUC.FilterEntries(filter)

	return response.Success(c, http.StatusOK, entries, "Log entries retrieved successfully")
}

// GetEntriesByDate returns entries grouped by calendar date, newest date first.
func (h *LogbookHandler) GetEntriesByDate(c echo.Context) error {
	groups := h.logbookUC.EntriesByDate()

	return response.Success(c, http.StatusOK, groups, "Log entries grouped by date successfully")
}

// DeleteEntry removes a single log entry.
func (h *LogbookHandler) DeleteEntry(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid entry ID")
	}

	if err := h.logbookUC.DeleteEntry(c.Request().Context(), id); err != nil {
		if errors.Is(err, impl.ErrEntryNotFound) {
			return response.NotFound(c, domainerrors.ErrEntryNotFound.ErrorCode(),
				domainerrors.ErrEntryNotFound.Message())
		}

		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Entry deleted successfully"}, "Entry deleted successfully")
}

// DeleteVoyage removes every entry of a voyage.
func (h *LogbookHandler) DeleteVoyage(c echo.Context) error {
	voyageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid voyage ID")
	}

	if err := h.logbookUC.DeleteVoyage(c.Request().Context(), voyageID); err != nil {
		if errors.Is(err, impl.ErrVoyageNotFound) {
			return response.NotFound(c, domainerrors.ErrVoyageNotFound.ErrorCode(),
				domainerrors.ErrVoyageNotFound.Message())
		}

		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Voyage deleted successfully"}, "Voyage deleted successfully")
}

// ArchiveVoyage flags a voyage inactive without deleting its entries.
func (h *LogbookHandler) ArchiveVoyage(c echo.Context) error {
	voyageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid voyage ID")
	}

	if err := h.logbookUC.ArchiveVoyage(c.Request().Context(), voyageID); err != nil {
		if errors.Is(err, impl.ErrVoyageNotFound) {
			return response.NotFound(c, domainerrors.ErrVoyageNotFound.ErrorCode(),
				domainerrors.ErrVoyageNotFound.Message())
		}

		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Voyage archived successfully"}, "Voyage archived successfully")
}

// UnarchiveVoyage restores an archived voyage to the active log.
func (h *LogbookHandler) UnarchiveVoyage(c echo.Context) error {
	voyageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid voyage ID")
	}

	if err := h.logbookUC.UnarchiveVoyage(c.Request().Context(), voyageID); err != nil {
		if errors.Is(err, impl.ErrVoyageNotFound) {
			return response.NotFound(c, domainerrors.ErrVoyageNotFound.ErrorCode(),
				domainerrors.ErrVoyageNotFound.Message())
		}

		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Voyage restored successfully"}, "Voyage restored successfully")
}

// handleAppError handles application errors
func (h *LogbookHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
