package serviceImp

import (
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"lavoura/entities"
	"lavoura/pkg/kb/repositoryImp"
)

func newTestSvc(t *testing.T) *Svc {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Article{}, &entities.ArticleChunk{}))
	return New(repositoryImp.New(db), nil)
}

func TestChunkText(t *testing.T) {
	assert.Empty(t, chunkText("", 1000))
	assert.Equal(t, []string{"curto"}, chunkText("curto", 1000))

	long := strings.Repeat("linha de manejo da soja\n", 200)
	parts := chunkText(long, 1000)
	assert.Greater(t, len(parts), 1)
	assert.Equal(t, long, strings.Join(parts, ""))
}

func TestUpsertAndKeywordSearch(t *testing.T) {
	svc := newTestSvc(t)

	a, n, err := svc.UpsertArticle("Manejo de pragas", "soja,pragas",
		"A lagarta-da-soja deve ser monitorada semanalmente com pano de batida.", "")
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, 1, n)

	_, _, err = svc.UpsertArticle("Adubação do milho", "milho",
		"A adubação nitrogenada de cobertura no milho é parcelada em dois momentos.", "")
	require.NoError(t, err)

	hits, err := svc.Search("lagarta soja", 5)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Contains(t, hits[0].Text, "lagarta-da-soja")

	hits, err = svc.Search("irrigação por pivô", 5)
	require.NoError(t, err)
	assert.Empty(t, hits, "no matching terms, no results")

	hits, err = svc.Search("", 5)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestArticlesListsNewestFirst(t *testing.T) {
	svc := newTestSvc(t)
	_, _, err := svc.UpsertArticle("Primeiro", "", "texto", "")
	require.NoError(t, err)
	_, _, err = svc.UpsertArticle("Segundo", "", "texto", "")
	require.NoError(t, err)

	as, err := svc.Articles()
	require.NoError(t, err)
	require.Len(t, as, 2)
	assert.Equal(t, "Segundo", as[0].Title)
	assert.Equal(t, "Primeiro", as[1].Title)
}

func TestSearchRanksByTermOverlap(t *testing.T) {
	svc := newTestSvc(t)
	_, _, err := svc.UpsertArticle("A", "", "soja plantio", "")
	require.NoError(t, err)
	_, _, err = svc.UpsertArticle("B", "", "soja plantio espaçamento adubação", "")
	require.NoError(t, err)

	hits, err := svc.Search("soja espaçamento adubação", 2)
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Contains(t, hits[0].Text, "espaçamento", "richer chunk ranks first")
}

func TestCosine(t *testing.T) {
	assert.InDelta(t, 1.0, cosine([]float32{1, 0}, []float32{2, 0}), 1e-9)
	assert.InDelta(t, 0.0, cosine([]float32{1, 0}, []float32{0, 3}), 1e-9)
	assert.Equal(t, 0.0, cosine([]float32{0, 0}, []float32{1, 1}))
}
