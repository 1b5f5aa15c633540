package database

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"lavoura/entities"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Crop{}))
	return db
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "legacy.json")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestImportLegacyStore(t *testing.T) {
	db := newTestDB(t)
	p := writeFile(t, `[
		{"crop_id":"L1","user_id":"U1","name":"Talhão Norte","crop_type":"soja","area_ha":10},
		{"crop_id":"L2","user_id":"U1","name":"Talhão Sul","crop_type":"milho","area_ha":7.5},
		{"name":"sem id"}
	]`)

	n := ImportLegacyStore(db, p)
	assert.Equal(t, 2, n)

	var count int64
	db.Model(&entities.Crop{}).Count(&count)
	assert.EqualValues(t, 2, count)

	// second run is a no-op: existing ids are skipped
	n = ImportLegacyStore(db, p)
	assert.Equal(t, 0, n)
	db.Model(&entities.Crop{}).Count(&count)
	assert.EqualValues(t, 2, count)
}

func TestImportLegacyStoreTolerantInputs(t *testing.T) {
	db := newTestDB(t)
	assert.Equal(t, 0, ImportLegacyStore(db, ""))
	assert.Equal(t, 0, ImportLegacyStore(db, filepath.Join(t.TempDir(), "missing.json")))
	assert.Equal(t, 0, ImportLegacyStore(db, writeFile(t, `{"not":"an array"}`)))
}
