package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/wildcat/spartan/common/bootstrap"
	"github.com/wildcat/spartan/common/repository"
)

// CameraHandler serves the known camera inventory
type CameraHandler struct {
	components *bootstrap.Components
	cameras    *repository.CameraRepository
}

// NewCameraHandler creates a new camera handler
func NewCameraHandler(components *bootstrap.Components) *CameraHandler {
	return &CameraHandler{
		components: components,
		cameras:    repository.NewCameraRepository(components.DB),
	}
}

// ListCameras returns every camera record, most recently updated first
// GET /api/v1/cameras
func (h *CameraHandler) ListCameras(c echo.Context) error {
	cameras, err := h.cameras.List(c.Request().Context())
	if err != nil {
		h.components.Logger.Error("failed to list cameras", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to list cameras",
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"cameras": cameras,
		"count":   len(cameras),
	})
}
