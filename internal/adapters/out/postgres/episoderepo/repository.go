package episoderepo

import (
	"context"
	"errors"

	"packing/internal/core/domain/model/episode"
	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormEpisodeRepository implements ports.EpisodeRepository using GORM.
type GormEpisodeRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormEpisodeRepository creates a new GORM episode repository.
func NewGormEpisodeRepository(db *gorm.DB, tracker aggregateTracker) *GormEpisodeRepository {
	return &GormEpisodeRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new episode with its catalog and placements.
func (r *GormEpisodeRepository) Add(ctx context.Context, aggregate *episode.Episode) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update stores the status and replaces the placement list of an existing episode.
// The catalog and the container size never change after creation.
func (r *GormEpisodeRepository) Update(ctx context.Context, aggregate *episode.Episode) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&EpisodeDTO{}).Where("id = ?", dto.ID).Update("status", dto.Status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("episode", aggregate.ID().String())
	}

	if err := db.Where("episode_id = ?", dto.ID).Delete(&PlacementDTO{}).Error; err != nil {
		return err
	}

	if len(dto.Placements) > 0 {
		if err := db.Create(&dto.Placements).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an episode by ID and replays its placements.
func (r *GormEpisodeRepository) Get(ctx context.Context, id kernel.UUID) (*episode.Episode, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto EpisodeDTO
	if err := r.withChildren(ctx).First(&dto, "id = ?", id.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("episode", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllRunning retrieves every Running episode in creation order.
func (r *GormEpisodeRepository) GetAllRunning(ctx context.Context) ([]*episode.Episode, error) {
	var dtos []EpisodeDTO
	if err := r.withChildren(ctx).
		Where("status = ?", episode.Running.String()).
		Order("created_at, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	episodes := make([]*episode.Episode, 0, len(dtos))
	for _, dto := range dtos {
		e, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		episodes = append(episodes, e)
	}

	return episodes, nil
}

func (r *GormEpisodeRepository) withChildren(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Shipments", func(db *gorm.DB) *gorm.DB { return db.Order("idx") }).
		Preload("Placements", func(db *gorm.DB) *gorm.DB { return db.Order("seq") })
}
