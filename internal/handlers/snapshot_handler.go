package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "stockfolio/internal/errors"
	"stockfolio/internal/pagination"
	"stockfolio/internal/services"
)

// SnapshotHandler handles portfolio snapshot requests.
type SnapshotHandler struct {
	snapshotService services.SnapshotServicer
}

// NewSnapshotHandler creates a new SnapshotHandler.
func NewSnapshotHandler(snapshotService services.SnapshotServicer) *SnapshotHandler {
	return &SnapshotHandler{snapshotService: snapshotService}
}

// RecordSnapshotRequest represents the request payload for recording a snapshot.
type RecordSnapshotRequest struct {
	RecordedAt *time.Time `json:"recorded_at"`
}

// RecordSnapshot handles recording a portfolio snapshot.
// @Summary     Record snapshot
// @Description Value the wallet and holdings now (or at recorded_at) and store the result
// @Tags        snapshots
// @Accept      json
// @Produce     json
// @Param       request body     RecordSnapshotRequest false "Snapshot time"
// @Success     201     {object} map[string]models.PortfolioSnapshot "Recorded snapshot"
// @Failure     400     {object} ErrorResponse "Invalid input"
// @Router      /snapshots [post]
func (h *SnapshotHandler) RecordSnapshot(c *gin.Context) {
	var req RecordSnapshotRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, bindError(err))
			return
		}
	}

	recordedAt := time.Now().UTC().Truncate(time.Second)
	if req.RecordedAt != nil {
		recordedAt = req.RecordedAt.UTC()
	}

	snapshot, err := h.snapshotService.RecordSnapshot(c.Request.Context(), recordedAt)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"snapshot": snapshot})
}

// GetSnapshots handles retrieving portfolio snapshots.
// @Summary     Get snapshots
// @Description Paginated portfolio snapshots for a date range, newest first
// @Tags        snapshots
// @Produce     json
// @Param       from_date query string true  "Start date (RFC3339 or YYYY-MM-DD)"
// @Param       to_date   query string true  "End date (RFC3339 or YYYY-MM-DD)"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.PortfolioSnapshot] "Paginated snapshots"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /snapshots [get]
func (h *SnapshotHandler) GetSnapshots(c *gin.Context) {
	from, err := parseOptionalTime(c, "from_date")
	if err != nil {
		respondWithError(c, err)
		return
	}
	if from == nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "from_date is required"))
		return
	}

	to, err := parseOptionalTime(c, "to_date")
	if err != nil {
		respondWithError(c, err)
		return
	}
	if to == nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "to_date is required"))
		return
	}
	if to.Before(*from) {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "to_date must not be before from_date"))
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	result, err := h.snapshotService.GetSnapshots(c.Request.Context(), *from, *to, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
