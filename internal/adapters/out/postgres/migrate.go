package postgres

import (
	"packing/internal/adapters/out/postgres/episoderepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the episode tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&episoderepo.EpisodeDTO{},
		&episoderepo.ShipmentDTO{},
		&episoderepo.PlacementDTO{},
	)
}
