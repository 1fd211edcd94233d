package queries

import (
	"context"

	"packing/internal/core/domain/model/episode"
	"packing/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetEpisodesSummaryQueryHandler reads the episode listing with a single SQL statement.
//
// Example:
//
//	handler := NewGetEpisodesSummaryQueryHandler(db)
//	rows, err := handler.Handle(ctx, NewGetEpisodesSummaryQuery())
//	if err != nil {
//	    return err
//	}
//	for _, row := range rows {
//	    fmt.Printf("%s %dx%d %s %d/%d\n", row.ID, row.ContainerLength, row.ContainerHeight,
//	        row.Status, row.Placements, row.Shipments)
//	}
type GetEpisodesSummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetEpisodesSummaryQueryHandler creates a handler for the episode listing.
func NewGetEpisodesSummaryQueryHandler(db *gorm.DB) GetEpisodesSummaryQueryHandler {
	return GetEpisodesSummaryQueryHandler{db: db}
}

// Handle returns the episodes in creation order.
func (h GetEpisodesSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetEpisodesSummaryQuery,
) ([]GetEpisodesSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	summaries := make([]GetEpisodesSummaryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			e.id,
			e.container_length,
			e.container_height,
			e.status,
			(SELECT COUNT(*) FROM episode_shipments s WHERE s.episode_id = e.id) AS shipments,
			(SELECT COUNT(*) FROM episode_placements p WHERE p.episode_id = e.id) AS placements
		FROM episodes e
		ORDER BY e.created_at, e.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var summary GetEpisodesSummaryQueryResponse
		var id uuid.UUID
		var status string

		err = rows.Scan(
			&id,
			&summary.ContainerLength,
			&summary.ContainerHeight,
			&status,
			&summary.Shipments,
			&summary.Placements,
		)
		if err != nil {
			return nil, err
		}

		episodeID, idErr := kernel.UUIDFromValue(id)
		if idErr != nil {
			return nil, idErr
		}
		summary.ID = episodeID

		parsed, statusErr := episode.ParseStatus(status)
		if statusErr != nil {
			return nil, statusErr
		}
		summary.Status = parsed

		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}
