// Package episoderepo provides data transfer objects and mapping functions for episode persistence.
// An episode is stored as its configuration, its shipment catalog and the ordered list of
// accepted placements. The occupancy grid is never stored; it is rebuilt by replay.
package episoderepo

import (
	"time"

	"packing/internal/core/domain/model/episode"
	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// EpisodeDTO represents the episodes table.
type EpisodeDTO struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey"`
	ContainerLength int            `gorm:"type:int;not null"`
	ContainerHeight int            `gorm:"type:int;not null"`
	Status          string         `gorm:"type:varchar(32);not null;index"`
	CreatedAt       time.Time      `gorm:"not null"`
	Shipments       []ShipmentDTO  `gorm:"foreignKey:EpisodeID;constraint:OnDelete:CASCADE"`
	Placements      []PlacementDTO `gorm:"foreignKey:EpisodeID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default "episode_dtos".
func (EpisodeDTO) TableName() string {
	return "episodes"
}

// ShipmentDTO is one catalog entry; Idx is its position in the catalog.
type ShipmentDTO struct {
	EpisodeID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Idx        int       `gorm:"primaryKey;autoIncrement:false"`
	Length     int       `gorm:"type:int;not null"`
	Height     int       `gorm:"type:int;not null"`
	Weight     int       `gorm:"type:int;not null"`
	Stackable  bool      `gorm:"not null"`
	Rotatable  bool      `gorm:"not null"`
	Identifier string    `gorm:"type:varchar(255)"`
}

// TableName overrides GORM's default "shipment_dtos".
func (ShipmentDTO) TableName() string {
	return "episode_shipments"
}

// PlacementDTO is one accepted step; Seq is its position in the replay order.
type PlacementDTO struct {
	EpisodeID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq         int       `gorm:"primaryKey;autoIncrement:false"`
	ShipmentIdx int       `gorm:"type:int;not null"`
	X           int       `gorm:"type:int;not null"`
	Y           int       `gorm:"type:int;not null"`
}

// TableName overrides GORM's default "placement_dtos".
func (PlacementDTO) TableName() string {
	return "episode_placements"
}

func fromDomain(aggregate *episode.Episode) EpisodeDTO {
	id := aggregate.ID().Value()
	cfg := aggregate.Config()

	shipments := make([]ShipmentDTO, 0, len(cfg.Shipments))
	for i, s := range cfg.Shipments {
		shipments = append(shipments, ShipmentDTO{
			EpisodeID:  id,
			Idx:        i,
			Length:     s.Length(),
			Height:     s.Height(),
			Weight:     s.Weight(),
			Stackable:  s.Stackable(),
			Rotatable:  s.Rotatable(),
			Identifier: s.Identifier(),
		})
	}

	return EpisodeDTO{
		ID:              id,
		ContainerLength: cfg.ContainerLength,
		ContainerHeight: cfg.ContainerHeight,
		Status:          aggregate.Status().String(),
		Shipments:       shipments,
		Placements:      placementsFromDomain(id, aggregate.Placements()),
	}
}

func placementsFromDomain(id uuid.UUID, placements []episode.Placement) []PlacementDTO {
	dtos := make([]PlacementDTO, 0, len(placements))
	for seq, p := range placements {
		dtos = append(dtos, PlacementDTO{
			EpisodeID:   id,
			Seq:         seq,
			ShipmentIdx: p.ShipmentIndex,
			X:           p.X,
			Y:           p.Y,
		})
	}
	return dtos
}

// toDomain expects Shipments ordered by Idx and Placements ordered by Seq.
func toDomain(dto EpisodeDTO) (*episode.Episode, error) {
	id, err := kernel.UUIDFromValue(dto.ID)
	if err != nil {
		return nil, err
	}

	status, err := episode.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	shipments := make([]shipment.Shipment, 0, len(dto.Shipments))
	for _, s := range dto.Shipments {
		item, itemErr := shipment.NewShipment(s.Length, s.Height, s.Weight, s.Stackable, s.Rotatable, s.Identifier)
		if itemErr != nil {
			return nil, itemErr
		}
		shipments = append(shipments, item)
	}

	placements := make([]episode.Placement, 0, len(dto.Placements))
	for _, p := range dto.Placements {
		placements = append(placements, episode.Placement{ShipmentIndex: p.ShipmentIdx, X: p.X, Y: p.Y})
	}

	return episode.RestoreEpisode(id, episode.Config{
		ContainerLength: dto.ContainerLength,
		ContainerHeight: dto.ContainerHeight,
		Shipments:       shipments,
	}, status, placements)
}
