package serviceImp

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"lavoura/entities"
	croprepo "lavoura/pkg/crop/repository"
	cropRepoImp "lavoura/pkg/crop/repositoryImp"
	"lavoura/pkg/timeline/service"
)

func newTestSvc(t *testing.T) (service.TimelineService, croprepo.CropRepository) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Crop{}))
	repo := cropRepoImp.New(db)
	require.NoError(t, repo.Create(&entities.Crop{
		CropID: "L1", UserID: "U_TEST", Name: "Talhão Norte", CropType: entities.CropSoy, AreaHa: 10,
	}))
	return New(repo), repo
}

func TestAddAndRemoveStage(t *testing.T) {
	svc, _ := newTestSvc(t)

	got, err := svc.AddStage("L1", "U_TEST", "Plantio", "2026-10-01", []string{"Semeadura", "Regulagem"})
	require.NoError(t, err)
	require.Len(t, got.Timeline, 1)
	st := got.Timeline[0]
	assert.NotEmpty(t, st.StageID)
	assert.Equal(t, entities.StagePending, st.Status)
	require.Len(t, st.Tasks, 2)
	assert.False(t, st.Tasks[0].Done)

	_, err = svc.AddStage("L1", "U_TEST", "", "", nil)
	require.Error(t, err, "title required")
	_, err = svc.AddStage("L1", "U_TEST", "Colheita", "01/10/2026", nil)
	require.Error(t, err, "date format")

	got, err = svc.RemoveStage("L1", "U_TEST", st.StageID)
	require.NoError(t, err)
	assert.Empty(t, got.Timeline)

	_, err = svc.RemoveStage("L1", "U_TEST", "ghost")
	require.Error(t, err)
}

func TestStatusIsUserSetNotDerived(t *testing.T) {
	svc, _ := newTestSvc(t)
	got, err := svc.AddStage("L1", "U_TEST", "Manejo", "", []string{"Adubação"})
	require.NoError(t, err)
	st := got.Timeline[0]

	// completing every task does not move the status
	got, err = svc.ToggleTask("L1", "U_TEST", st.Tasks[0].TaskID)
	require.NoError(t, err)
	assert.True(t, got.Timeline[0].Tasks[0].Done)
	assert.Equal(t, entities.StagePending, got.Timeline[0].Status)

	got, err = svc.SetStageStatus("L1", "U_TEST", st.StageID, entities.StageDone)
	require.NoError(t, err)
	assert.Equal(t, entities.StageDone, got.Timeline[0].Status)

	// and un-completing a task does not move it back
	got, err = svc.ToggleTask("L1", "U_TEST", st.Tasks[0].TaskID)
	require.NoError(t, err)
	assert.False(t, got.Timeline[0].Tasks[0].Done)
	assert.Equal(t, entities.StageDone, got.Timeline[0].Status)

	_, err = svc.SetStageStatus("L1", "U_TEST", st.StageID, "started")
	require.Error(t, err, "unknown status rejected")
}

func TestMutationsWriteThrough(t *testing.T) {
	svc, repo := newTestSvc(t)
	got, err := svc.AddStage("L1", "U_TEST", "Preparo", "", []string{"Calagem"})
	require.NoError(t, err)
	task := got.Timeline[0].Tasks[0]

	_, err = svc.ToggleTask("L1", "U_TEST", task.TaskID)
	require.NoError(t, err)

	stored, err := repo.FindByID("L1", "U_TEST")
	require.NoError(t, err)
	require.Len(t, stored.Timeline, 1)
	assert.True(t, stored.Timeline[0].Tasks[0].Done)

	_, err = svc.ToggleTask("L1", "U_TEST", "ghost")
	require.Error(t, err)
}
