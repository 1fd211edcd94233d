package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"packing/internal/core/application/usecases/commands"
	"packing/internal/core/application/usecases/queries"
	"packing/internal/core/domain/model/episode"
	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/shipment"
	"packing/internal/generated/servers"
	"packing/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"gonum.org/v1/gonum/mat"
)

// Use case handlers consumed by the server.
type (
	CreateEpisodeHandler interface {
		Handle(ctx context.Context, cmd commands.CreateEpisodeCommand) error
	}

	StepEpisodeHandler interface {
		Handle(ctx context.Context, cmd commands.StepEpisodeCommand) (commands.StepResult, error)
	}

	ResetEpisodeHandler interface {
		Handle(ctx context.Context, cmd commands.ResetEpisodeCommand) error
	}

	GetEpisodeEvaluationHandler interface {
		Handle(
			ctx context.Context,
			query queries.GetEpisodeEvaluationQuery,
		) (queries.GetEpisodeEvaluationQueryResponse, error)
	}

	GetEpisodesSummaryHandler interface {
		Handle(
			ctx context.Context,
			query queries.GetEpisodesSummaryQuery,
		) ([]queries.GetEpisodesSummaryQueryResponse, error)
	}
)

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createEpisodeHandler CreateEpisodeHandler
	stepEpisodeHandler   StepEpisodeHandler
	resetEpisodeHandler  ResetEpisodeHandler

	// Query handlers
	getEpisodeEvaluationHandler GetEpisodeEvaluationHandler
	getEpisodesSummaryHandler   GetEpisodesSummaryHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createEpisodeHandler CreateEpisodeHandler,
	stepEpisodeHandler StepEpisodeHandler,
	resetEpisodeHandler ResetEpisodeHandler,
	getEpisodeEvaluationHandler GetEpisodeEvaluationHandler,
	getEpisodesSummaryHandler GetEpisodesSummaryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		createEpisodeHandler:        createEpisodeHandler,
		stepEpisodeHandler:          stepEpisodeHandler,
		resetEpisodeHandler:         resetEpisodeHandler,
		getEpisodeEvaluationHandler: getEpisodeEvaluationHandler,
		getEpisodesSummaryHandler:   getEpisodesSummaryHandler,
		logger:                      logger.With("component", "http_server"),
	}
}

// GetEpisodes handles GET /api/v1/episodes - lists all episodes.
func (s *Server) GetEpisodes(ctx echo.Context) error {
	summaries, err := s.getEpisodesSummaryHandler.Handle(ctx.Request().Context(), queries.NewGetEpisodesSummaryQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve episodes")
	}

	response := make([]servers.EpisodeSummary, len(summaries))
	for i, summary := range summaries {
		response[i] = servers.EpisodeSummary{
			Id:              summary.ID.Value(),
			ContainerLength: summary.ContainerLength,
			ContainerHeight: summary.ContainerHeight,
			Status:          summary.Status.String(),
			Shipments:       summary.Shipments,
			Placements:      summary.Placements,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateEpisode handles POST /api/v1/episodes - starts a new episode.
func (s *Server) CreateEpisode(ctx echo.Context) error {
	var body servers.CreateEpisodeJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	catalog := make([]shipment.Shipment, 0, len(body.Shipments))
	for _, item := range body.Shipments {
		s, err := shipment.NewShipment(
			item.Length,
			item.Height,
			item.Weight,
			boolOr(item.Stackable, true),
			boolOr(item.Rotatable, false),
			stringOr(item.Identifier, ""),
		)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, servers.Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid shipment data: " + err.Error(),
			})
		}
		catalog = append(catalog, s)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateEpisodeCommand(id, body.ContainerLength, body.ContainerHeight, catalog)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid episode data: " + err.Error(),
		})
	}

	if err = s.createEpisodeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to create episode")
	}

	return ctx.JSON(http.StatusCreated, servers.EpisodeCreated{Id: id.Value()})
}

// GetEpisode handles GET /api/v1/episodes/{id} - evaluates one episode.
func (s *Server) GetEpisode(ctx echo.Context, id openapi_types.UUID) error {
	evaluation, err := s.evaluate(ctx, id)
	if err != nil {
		return s.fail(ctx, err, "Failed to evaluate episode")
	}

	response := servers.Evaluation{
		Id:                     evaluation.ID.Value(),
		Status:                 evaluation.Status.String(),
		ContainerLength:        evaluation.ContainerLength,
		ContainerHeight:        evaluation.ContainerHeight,
		Valid:                  evaluation.Valid,
		OutOfBounds:            evaluation.OutOfBounds,
		OverlappingPairs:       make([][]int, len(evaluation.OverlappingPairs)),
		TotalVolume:            evaluation.TotalVolume,
		RemainingVolume:        evaluation.RemainingVolume,
		DegreeOfFilling:        evaluation.DegreeOfFilling,
		Weight:                 evaluation.Weight,
		OptimalCenterOfGravity: toPosition(evaluation.OptimalCenterOfGravity),
		DistanceOptimalCog:     evaluation.DistanceOptimalCOG,
		Reward:                 evaluation.Reward,
		Map:                    evaluation.Map,
		RenderedMap:            evaluation.RenderedMap,
		Placements:             make([]servers.Action, len(evaluation.Placements)),
	}
	for i, pair := range evaluation.OverlappingPairs {
		response.OverlappingPairs[i] = []int{pair[0], pair[1]}
	}
	for i, p := range evaluation.Placements {
		response.Placements[i] = servers.Action{ShipmentIndex: p.ShipmentIndex, X: p.X, Y: p.Y}
	}
	if evaluation.CenterOfGravity != nil {
		cog := toPosition(*evaluation.CenterOfGravity)
		response.CenterOfGravity = &cog
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetEpisodeMap handles GET /api/v1/episodes/{id}/map - renders the occupancy grid.
func (s *Server) GetEpisodeMap(ctx echo.Context, id openapi_types.UUID) error {
	evaluation, err := s.evaluate(ctx, id)
	if err != nil {
		return s.fail(ctx, err, "Failed to render episode")
	}

	return ctx.String(http.StatusOK, evaluation.RenderedMap)
}

// StepEpisode handles POST /api/v1/episodes/{id}/steps - places one shipment.
func (s *Server) StepEpisode(ctx echo.Context, id openapi_types.UUID) error {
	var body servers.StepEpisodeJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	episodeID, err := kernel.UUIDFromValue(id)
	if err != nil {
		return s.fail(ctx, err, "Invalid episode id")
	}

	cmd, err := commands.NewStepEpisodeCommand(episodeID, body.ShipmentIndex, body.X, body.Y)
	if err != nil {
		return s.fail(ctx, err, "Invalid step")
	}

	result, err := s.stepEpisodeHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to step episode")
	}

	info := make([][]int, len(result.Observation.ShipmentInfo))
	for i, row := range result.Observation.ShipmentInfo {
		info[i] = []int{row[0], row[1], row[2]}
	}

	return ctx.JSON(http.StatusOK, servers.StepResult{
		Observation: servers.Observation{
			ContainerState: denseToInts(result.Observation.ContainerState),
			ShipmentInfo:   info,
		},
		Reward:     result.Reward,
		Terminated: result.Terminated,
	})
}

// ResetEpisode handles POST /api/v1/episodes/{id}/reset - restarts an episode.
func (s *Server) ResetEpisode(ctx echo.Context, id openapi_types.UUID) error {
	episodeID, err := kernel.UUIDFromValue(id)
	if err != nil {
		return s.fail(ctx, err, "Invalid episode id")
	}

	cmd, err := commands.NewResetEpisodeCommand(episodeID)
	if err != nil {
		return s.fail(ctx, err, "Invalid reset")
	}

	if err = s.resetEpisodeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to reset episode")
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) evaluate(ctx echo.Context, id openapi_types.UUID) (queries.GetEpisodeEvaluationQueryResponse, error) {
	episodeID, err := kernel.UUIDFromValue(id)
	if err != nil {
		return queries.GetEpisodeEvaluationQueryResponse{}, err
	}

	query, err := queries.NewGetEpisodeEvaluationQuery(episodeID)
	if err != nil {
		return queries.GetEpisodeEvaluationQueryResponse{}, err
	}

	return s.getEpisodeEvaluationHandler.Handle(ctx.Request().Context(), query)
}

// fail writes err as an Error body. Client errors expose the cause,
// server errors are logged and answered with fallback.
func (s *Server) fail(ctx echo.Context, err error, fallback string) error {
	code := statusCode(err)
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), fallback, "error", err)
		return ctx.JSON(code, servers.Error{Code: code, Message: fallback})
	}

	return ctx.JSON(code, servers.Error{Code: code, Message: err.Error()})
}

func statusCode(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, episode.ErrEpisodeTerminated),
		errors.Is(err, episode.ErrShipmentAlreadyPacked):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, kernel.ErrUUIDIsNotConstructed):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func toPosition(p kernel.Position) servers.Position {
	return servers.Position{X: p.X(), Y: p.Y()}
}

func denseToInts(m *mat.Dense) [][]int {
	if m == nil {
		return [][]int{}
	}

	rows, cols := m.Dims()
	out := make([][]int, rows)
	for i := range rows {
		out[i] = make([]int, cols)
		for j := range cols {
			out[i][j] = int(m.At(i, j))
		}
	}
	return out
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

func stringOr(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return *v
}
