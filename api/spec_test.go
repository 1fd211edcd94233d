package api_test

import (
	"encoding/json"
	"testing"

	"packing/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestGetSwagger(t *testing.T) {
	t.Run("should load a valid document", func(t *testing.T) {
		doc, err := api.GetSwagger()

		require.NoError(t, err)
		assert.Equal(t, "Packing", doc.Info.Title)
		assert.NotNil(t, doc.Paths.Find("/api/v1/episodes"))
		assert.NotNil(t, doc.Paths.Find("/api/v1/episodes/{id}/steps"))
		assert.Contains(t, doc.Components.Schemas, "Evaluation")
	})

	t.Run("should expose every operation", func(t *testing.T) {
		doc, err := api.GetSwagger()
		require.NoError(t, err)

		ids := make([]string, 0)
		for _, item := range doc.Paths.Map() {
			for _, op := range item.Operations() {
				ids = append(ids, op.OperationID)
			}
		}

		assert.ElementsMatch(t, []string{
			"GetEpisodes",
			"CreateEpisode",
			"GetEpisode",
			"StepEpisode",
			"ResetEpisode",
			"GetEpisodeMap",
		}, ids)
	})
}

func TestRawSpec(t *testing.T) {
	raw := api.RawSpec()
	require.True(t, json.Valid(raw))

	raw[0] = 'x'
	assert.NotEqual(t, raw[0], api.RawSpec()[0])
}

func TestRegisterSwagger(t *testing.T) {
	api.RegisterSwagger()
	api.RegisterSwagger()

	doc, err := swag.ReadDoc()

	require.NoError(t, err)
	assert.JSONEq(t, string(api.RawSpec()), doc)
}
