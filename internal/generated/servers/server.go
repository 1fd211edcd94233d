package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List episodes
	// (GET /api/v1/episodes)
	GetEpisodes(ctx echo.Context) error
	// Start an episode
	// (POST /api/v1/episodes)
	CreateEpisode(ctx echo.Context) error
	// Evaluate an episode
	// (GET /api/v1/episodes/{id})
	GetEpisode(ctx echo.Context, id openapi_types.UUID) error
	// Render the occupancy grid
	// (GET /api/v1/episodes/{id}/map)
	GetEpisodeMap(ctx echo.Context, id openapi_types.UUID) error
	// Empty the container and make every shipment available again
	// (POST /api/v1/episodes/{id}/reset)
	ResetEpisode(ctx echo.Context, id openapi_types.UUID) error
	// Place one shipment
	// (POST /api/v1/episodes/{id}/steps)
	StepEpisode(ctx echo.Context, id openapi_types.UUID) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetEpisodes converts echo context to params.
func (w *ServerInterfaceWrapper) GetEpisodes(ctx echo.Context) error {
	return w.Handler.GetEpisodes(ctx)
}

// CreateEpisode converts echo context to params.
func (w *ServerInterfaceWrapper) CreateEpisode(ctx echo.Context) error {
	return w.Handler.CreateEpisode(ctx)
}

// GetEpisode converts echo context to params.
func (w *ServerInterfaceWrapper) GetEpisode(ctx echo.Context) error {
	id, err := bindEpisodeID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetEpisode(ctx, id)
}

// GetEpisodeMap converts echo context to params.
func (w *ServerInterfaceWrapper) GetEpisodeMap(ctx echo.Context) error {
	id, err := bindEpisodeID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetEpisodeMap(ctx, id)
}

// ResetEpisode converts echo context to params.
func (w *ServerInterfaceWrapper) ResetEpisode(ctx echo.Context) error {
	id, err := bindEpisodeID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ResetEpisode(ctx, id)
}

// StepEpisode converts echo context to params.
func (w *ServerInterfaceWrapper) StepEpisode(ctx echo.Context) error {
	id, err := bindEpisodeID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.StepEpisode(ctx, id)
}

func bindEpisodeID(ctx echo.Context) (openapi_types.UUID, error) {
	var id openapi_types.UUID

	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	return id, nil
}

// EchoRouter is the subset of echo.Echo and echo.Group used for registration.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends baseURL to the paths.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/v1/episodes", wrapper.GetEpisodes)
	router.POST(baseURL+"/api/v1/episodes", wrapper.CreateEpisode)
	router.GET(baseURL+"/api/v1/episodes/:id", wrapper.GetEpisode)
	router.GET(baseURL+"/api/v1/episodes/:id/map", wrapper.GetEpisodeMap)
	router.POST(baseURL+"/api/v1/episodes/:id/reset", wrapper.ResetEpisode)
	router.POST(baseURL+"/api/v1/episodes/:id/steps", wrapper.StepEpisode)
}
