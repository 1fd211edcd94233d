package servers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"packing/internal/generated/servers"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingServer struct {
	calls []string
	ids   []openapi_types.UUID
}

func (s *recordingServer) GetEpisodes(ctx echo.Context) error {
	s.calls = append(s.calls, "GetEpisodes")
	return ctx.NoContent(http.StatusOK)
}

func (s *recordingServer) CreateEpisode(ctx echo.Context) error {
	s.calls = append(s.calls, "CreateEpisode")
	return ctx.NoContent(http.StatusCreated)
}

func (s *recordingServer) GetEpisode(ctx echo.Context, id openapi_types.UUID) error {
	return s.record(ctx, "GetEpisode", id)
}

func (s *recordingServer) GetEpisodeMap(ctx echo.Context, id openapi_types.UUID) error {
	return s.record(ctx, "GetEpisodeMap", id)
}

func (s *recordingServer) ResetEpisode(ctx echo.Context, id openapi_types.UUID) error {
	return s.record(ctx, "ResetEpisode", id)
}

func (s *recordingServer) StepEpisode(ctx echo.Context, id openapi_types.UUID) error {
	return s.record(ctx, "StepEpisode", id)
}

func (s *recordingServer) record(ctx echo.Context, name string, id openapi_types.UUID) error {
	s.calls = append(s.calls, name)
	s.ids = append(s.ids, id)
	return ctx.NoContent(http.StatusOK)
}

func TestRegisterHandlers(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		method string
		path   string
		call   string
	}{
		{http.MethodGet, "/api/v1/episodes", "GetEpisodes"},
		{http.MethodPost, "/api/v1/episodes", "CreateEpisode"},
		{http.MethodGet, "/api/v1/episodes/" + id.String(), "GetEpisode"},
		{http.MethodGet, "/api/v1/episodes/" + id.String() + "/map", "GetEpisodeMap"},
		{http.MethodPost, "/api/v1/episodes/" + id.String() + "/reset", "ResetEpisode"},
		{http.MethodPost, "/api/v1/episodes/" + id.String() + "/steps", "StepEpisode"},
	}

	for _, tt := range tests {
		t.Run("should route "+tt.method+" "+tt.path, func(t *testing.T) {
			e := echo.New()
			srv := &recordingServer{}
			servers.RegisterHandlers(e, srv)

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			require.Less(t, rec.Code, http.StatusBadRequest)
			assert.Equal(t, []string{tt.call}, srv.calls)
			for _, got := range srv.ids {
				assert.Equal(t, id, got)
			}
		})
	}

	t.Run("should reject malformed ids", func(t *testing.T) {
		e := echo.New()
		srv := &recordingServer{}
		servers.RegisterHandlers(e, srv)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/episodes/not-a-uuid", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, srv.calls)
	})
}
