package database

import (
	"encoding/json"
	"os"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"lavoura/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("open sqlite")
	}

	if err := db.AutoMigrate(
		&entities.Crop{},
		&entities.HarvestLog{},
		&entities.ChatMessage{},
		&entities.Article{},
		&entities.ArticleChunk{},
	); err != nil {
		log.Fatal().Err(err).Msg("automigrate")
	}

	return db
}

// ImportLegacyStore reads the old single-key flat file (a JSON array of crop
// records) and inserts any record whose id is not yet in the database.
// A missing or malformed file is ignored rather than fatal.
func ImportLegacyStore(db *gorm.DB, path string) int {
	if path == "" {
		return 0
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return 0 // absent is fine
	}
	var crops []entities.Crop
	if err := json.Unmarshal(b, &crops); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("legacy store unreadable, skipping")
		return 0
	}
	imported := 0
	for i := range crops {
		c := crops[i]
		if c.CropID == "" {
			continue
		}
		var n int64
		db.Model(&entities.Crop{}).Where("crop_id = ?", c.CropID).Count(&n)
		if n > 0 {
			continue
		}
		if err := db.Create(&c).Error; err != nil {
			log.Warn().Err(err).Str("crop_id", c.CropID).Msg("legacy import failed")
			continue
		}
		imported++
	}
	if imported > 0 {
		log.Info().Int("count", imported).Msg("imported legacy crop records")
	}
	return imported
}
