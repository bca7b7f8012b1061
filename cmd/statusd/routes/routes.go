package routes

import (
	"github.com/labstack/echo/v4"
	"github.com/wildcat/spartan/cmd/statusd/handlers"
	"github.com/wildcat/spartan/common/bootstrap"
)

// RegisterSyncRoutes registers the sync result routes
func RegisterSyncRoutes(e *echo.Echo, components *bootstrap.Components) {
	h := handlers.NewSyncHandler(components)

	syncs := e.Group("/api/v1/syncs")
	{
		syncs.GET("", h.ListSyncs) // GET /api/v1/syncs?limit=50
	}
}

// RegisterCameraRoutes registers the camera inventory routes
func RegisterCameraRoutes(e *echo.Echo, components *bootstrap.Components) {
	h := handlers.NewCameraHandler(components)

	cameras := e.Group("/api/v1/cameras")
	{
		cameras.GET("", h.ListCameras) // GET /api/v1/cameras
	}
}
