package handler

import (
	"log/slog"
	"net/http"

	"shiplog/internal/delivery/api/response"
	"shiplog/internal/domain/entity"
	domainerrors "shiplog/internal/domain/errors"
	"shiplog/internal/usecase"
	"shiplog/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// IngestHandlerParams holds dependencies for IngestHandler, injected by Fx.
type IngestHandlerParams struct {
	fx.In

	LogbookUC usecase.LogbookUsecase
	Logger    *slog.Logger
}

// IngestHandler accepts device sync batches on the internal API.
type IngestHandler struct {
	logbookUC usecase.LogbookUsecase
	logger    *slog.Logger
}

// NewIngestHandler creates a new ingest handler instance.
func NewIngestHandler(params IngestHandlerParams) *IngestHandler {
	return &IngestHandler{
		logbookUC: params.LogbookUC,
		logger:    params.Logger,
	}
}

// IngestBatchRequest is one device upload of recorded log entries.
type IngestBatchRequest struct {
	Entries []*entity.LogEntry `json:"entries" validate:"required,min=1"`
}

type ingestBatchResponse struct {
	Accepted int `json:"accepted"`
}

type enqueueBatchResponse struct {
	Queued int `json:"queued"`
}

type drainQueueResponse struct {
	Drained int `json:"drained"`
}

// IngestBatch persists a device sync batch into the durable store.
// POST /internal/entries/batch
func (h *IngestHandler) IngestBatch(c echo.Context) error {
	var req IngestBatchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_REQUEST", "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Batch must contain at least one entry")
	}

	if err := h.logbookUC.IngestEntries(c.Request().Context(), req.Entries); err != nil {
		if errors.Is(err, impl.ErrEntryMissingID) {
			return response.BadRequest(c, domainerrors.ErrEntryIDRequired.ErrorCode(),
				domainerrors.ErrEntryIDRequired.Message())
		}

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, ingestBatchResponse{Accepted: len(req.Entries)})
}

// EnqueueOffline parks a batch in the offline queue instead of the store.
// Devices call this when a direct batch upload was rejected or timed out.
// POST /internal/queue/entries
func (h *IngestHandler) EnqueueOffline(c echo.Context) error {
	var req IngestBatchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_REQUEST", "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Batch must contain at least one entry")
	}

	if err := h.logbookUC.EnqueueOffline(c.Request().Context(), req.Entries); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, enqueueBatchResponse{Queued: len(req.Entries)})
}

// DrainQueue moves every queued entry into the durable store.
// POST /internal/queue/drain
func (h *IngestHandler) DrainQueue(c echo.Context) error {
	drained, err := h.logbookUC.DrainOfflineQueue(c.Request().Context())
	if err != nil {
		h.logger.Error("Offline queue drain failed", slog.Any("error", err))

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, drainQueueResponse{Drained: drained})
}
