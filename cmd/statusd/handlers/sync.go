package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/wildcat/spartan/common/bootstrap"
	"github.com/wildcat/spartan/common/repository"
)

const defaultSyncLimit = 50

// SyncHandler serves recent sync run results
type SyncHandler struct {
	components *bootstrap.Components
	results    *repository.SyncResultRepository
}

// NewSyncHandler creates a new sync handler
func NewSyncHandler(components *bootstrap.Components) *SyncHandler {
	return &SyncHandler{
		components: components,
		results:    repository.NewSyncResultRepository(components.DB),
	}
}

// ListSyncs returns the most recent sync results, newest first
// GET /api/v1/syncs?limit=50
func (h *SyncHandler) ListSyncs(c echo.Context) error {
	limit := defaultSyncLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "limit must be a positive integer",
			})
		}
		limit = parsed
	}

	results, err := h.results.Recent(c.Request().Context(), limit)
	if err != nil {
		h.components.Logger.Error("failed to list sync results", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to list sync results",
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"syncs": results,
		"count": len(results),
	})
}
