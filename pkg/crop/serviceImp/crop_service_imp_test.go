package serviceImp

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"lavoura/entities"
	"lavoura/pkg/crop/repositoryImp"
	"lavoura/pkg/crop/service"
)

func newTestSvc(t *testing.T) service.CropService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Crop{}))
	return New(repositoryImp.New(db))
}

func seedCrop(t *testing.T, svc service.CropService, id string) *entities.Crop {
	t.Helper()
	c := &entities.Crop{
		CropID:   id,
		UserID:   "U_TEST",
		Name:     "Talhão Norte",
		CropType: entities.CropSoy,
		SoilType: entities.SoilMixed,
		AreaHa:   10,
	}
	require.NoError(t, svc.Create(c))
	return c
}

func strp(s string) *string   { return &s }
func f64p(v float64) *float64 { return &v }

func TestCreateRejectsDuplicateID(t *testing.T) {
	svc := newTestSvc(t)
	seedCrop(t, svc, "L1")

	err := svc.Create(&entities.Crop{
		CropID: "L1", UserID: "U_TEST", Name: "outra", CropType: entities.CropCorn, AreaHa: 5,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate crop id")

	got, err := svc.Get("L1", "U_TEST")
	require.NoError(t, err)
	assert.Equal(t, "Talhão Norte", got.Name)
}

func TestCreateValidation(t *testing.T) {
	svc := newTestSvc(t)
	assert.Error(t, svc.Create(&entities.Crop{UserID: "U", Name: "x", CropType: entities.CropSoy, AreaHa: 1}))
	assert.Error(t, svc.Create(&entities.Crop{CropID: "a", UserID: "U", CropType: entities.CropSoy, AreaHa: 1}))
	assert.Error(t, svc.Create(&entities.Crop{CropID: "b", UserID: "U", Name: "x", CropType: "banana", AreaHa: 1}))
	assert.Error(t, svc.Create(&entities.Crop{CropID: "c", UserID: "U", Name: "x", CropType: entities.CropSoy, AreaHa: 0}))
}

func TestPatchAppliesOnlySetFields(t *testing.T) {
	svc := newTestSvc(t)
	seedCrop(t, svc, "L1")

	got, err := svc.Patch("L1", "U_TEST", service.CropPatch{
		Name:   strp("Talhão Sul"),
		AreaHa: f64p(12.5),
	})
	require.NoError(t, err)
	assert.Equal(t, "Talhão Sul", got.Name)
	assert.Equal(t, 12.5, got.AreaHa)
	assert.Equal(t, entities.CropSoy, got.CropType)
	assert.Equal(t, entities.SoilMixed, got.SoilType)
}

func TestPatchRejectsBadValuesLeavingStoreUntouched(t *testing.T) {
	svc := newTestSvc(t)
	seedCrop(t, svc, "L1")

	_, err := svc.Patch("L1", "U_TEST", service.CropPatch{AreaHa: f64p(-3)})
	require.Error(t, err)
	_, err = svc.Patch("L1", "U_TEST", service.CropPatch{Name: strp("")})
	require.Error(t, err)
	_, err = svc.Patch("L1", "U_TEST", service.CropPatch{CropType: strp("mandioca")})
	require.Error(t, err)

	got, err := svc.Get("L1", "U_TEST")
	require.NoError(t, err)
	assert.Equal(t, "Talhão Norte", got.Name)
	assert.Equal(t, 10.0, got.AreaHa)
}

func TestCoordinatesAreWriteOnce(t *testing.T) {
	svc := newTestSvc(t)
	seedCrop(t, svc, "L1")

	_, err := svc.Patch("L1", "U_TEST", service.CropPatch{Lat: f64p(-15.7)})
	require.Error(t, err, "lat without lng")

	got, err := svc.Patch("L1", "U_TEST", service.CropPatch{Lat: f64p(-15.7), Lng: f64p(-47.8)})
	require.NoError(t, err)
	assert.True(t, got.HasCoordinates())

	_, err = svc.Patch("L1", "U_TEST", service.CropPatch{Lat: f64p(0), Lng: f64p(0)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already set")
}

func TestPatchUnknownUserIsNotFound(t *testing.T) {
	svc := newTestSvc(t)
	seedCrop(t, svc, "L1")
	_, err := svc.Patch("L1", "U_OTHER", service.CropPatch{Name: strp("x")})
	assert.Error(t, err)
}

func TestMaterialAddReplaceRemove(t *testing.T) {
	svc := newTestSvc(t)
	seedCrop(t, svc, "L1")

	got, err := svc.AddMaterial("L1", "U_TEST", entities.Material{
		Name: "Ureia", Quantity: 200, Unit: "kg", UnitPriceEstimate: 3.2,
	})
	require.NoError(t, err)
	require.Len(t, got.Materials, 1)
	assert.Equal(t, entities.MatOther, got.Materials[0].Category, "unknown category normalizes to other")

	got, err = svc.AddMaterial("L1", "U_TEST", entities.Material{
		Name: "Semente", Quantity: 40, Unit: "sc", UnitPriceEstimate: 180, Category: entities.MatSeed,
	})
	require.NoError(t, err)
	require.Len(t, got.Materials, 2)

	got, err = svc.ReplaceMaterial("L1", "U_TEST", 0, entities.Material{
		Name: "Ureia", Quantity: 250, Unit: "kg", UnitPriceEstimate: 3.0, Category: entities.MatFertilizer,
	})
	require.NoError(t, err)
	assert.Equal(t, 250.0, got.Materials[0].Quantity)

	got, err = svc.RemoveMaterial("L1", "U_TEST", 0)
	require.NoError(t, err)
	require.Len(t, got.Materials, 1)
	assert.Equal(t, "Semente", got.Materials[0].Name)
}

func TestMaterialEditsAreClamped(t *testing.T) {
	svc := newTestSvc(t)
	seedCrop(t, svc, "L1")

	_, err := svc.AddMaterial("L1", "U_TEST", entities.Material{Name: "x", Quantity: -1})
	assert.Error(t, err)
	_, err = svc.AddMaterial("L1", "U_TEST", entities.Material{Quantity: 1})
	assert.Error(t, err, "name required")
	_, err = svc.AddMaterial("L1", "U_TEST", entities.Material{Name: "x", UnitPriceEstimate: -2})
	assert.Error(t, err)
	_, err = svc.ReplaceMaterial("L1", "U_TEST", 5, entities.Material{Name: "x"})
	assert.Error(t, err, "index out of range")
	_, err = svc.RemoveMaterial("L1", "U_TEST", 0)
	assert.Error(t, err)
}

func TestListIsOrderedByCreation(t *testing.T) {
	svc := newTestSvc(t)
	seedCrop(t, svc, "L1")
	seedCrop(t, svc, "L2")
	seedCrop(t, svc, "L3")

	list, err := svc.List("U_TEST")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "L1", list[0].CropID)
	assert.Equal(t, "L3", list[2].CropID)
}

func TestDeleteAbsentIsNoop(t *testing.T) {
	svc := newTestSvc(t)
	assert.NoError(t, svc.Delete("ghost", "U_TEST"))
}
