package router

import (
	"github.com/labstack/echo/v4"

	"lavoura/pkg/middleware"
)

type CropController interface {
	List(echo.Context) error
	Get(echo.Context) error
	Patch(echo.Context) error
	Delete(echo.Context) error
	AddMaterial(echo.Context) error
	ReplaceMaterial(echo.Context) error
	RemoveMaterial(echo.Context) error
}

type WizardController interface {
	Start(echo.Context) error
	Get(echo.Context) error
	SetFields(echo.Context) error
	Next(echo.Context) error
	Previous(echo.Context) error
	Submit(echo.Context) error
}

type HarvestController interface {
	Create(echo.Context) error
	List(echo.Context) error
	Patch(echo.Context) error
	Delete(echo.Context) error
}

type TimelineController interface {
	AddStage(echo.Context) error
	RemoveStage(echo.Context) error
	PatchStage(echo.Context) error
	ToggleTask(echo.Context) error
}

func New(
	e *echo.Echo,
	enableHeaderAuth bool,
	cropCtrl CropController,
	wizardCtrl WizardController,
	harvestCtrl HarvestController,
	timelineCtrl TimelineController,
	assistantCtrl interface {
		History(echo.Context) error
		Ask(echo.Context) error
	},
	summaryCtrl interface {
		Progress(echo.Context) error
		Summary(echo.Context) error
	},
	marketCtrl interface {
		List(echo.Context) error
		Get(echo.Context) error
	},
	weatherCtrl interface {
		Current(echo.Context) error
		ForCrop(echo.Context) error
		MapConfig(echo.Context) error
	},
	reportCtrl interface{ Export(echo.Context) error },
	kbCtrl interface {
		IngestText(echo.Context) error
		IngestURL(echo.Context) error
		ListArticles(echo.Context) error
		Search(echo.Context) error
	},
	authCtrl interface {
		DevLogin(echo.Context) error
		WhoAmI(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	if enableHeaderAuth {
		e.Use(middleware.HeaderAuth(true))
	} else {
		e.Use(middleware.DevLogin())
	}
	api := e.Group("")

	api.GET("/whoami", authCtrl.WhoAmI)
	api.GET("/devlogin", authCtrl.DevLogin)
	e.GET("/health", healthCtrl.Health)

	// wizard: the only path that creates a crop record
	api.POST("/wizard", wizardCtrl.Start)
	api.GET("/wizard/:id", wizardCtrl.Get)
	api.PATCH("/wizard/:id", wizardCtrl.SetFields)
	api.POST("/wizard/:id/next", wizardCtrl.Next)
	api.POST("/wizard/:id/previous", wizardCtrl.Previous)
	api.POST("/wizard/:id/submit", wizardCtrl.Submit)

	api.GET("/crops", cropCtrl.List)
	api.GET("/crops/:id", cropCtrl.Get)
	api.PATCH("/crops/:id", cropCtrl.Patch)
	api.DELETE("/crops/:id", cropCtrl.Delete)

	g := e.Group("/crops")
	g.POST("/:id/materials", cropCtrl.AddMaterial)
	g.PUT("/:id/materials/:index", cropCtrl.ReplaceMaterial)
	g.DELETE("/:id/materials/:index", cropCtrl.RemoveMaterial)

	g.POST("/:id/timeline", timelineCtrl.AddStage)
	g.PATCH("/:id/timeline/:stage_id", timelineCtrl.PatchStage)
	g.DELETE("/:id/timeline/:stage_id", timelineCtrl.RemoveStage)
	g.PATCH("/:id/tasks/:task_id", timelineCtrl.ToggleTask)

	g.POST("/:id/harvests", harvestCtrl.Create)
	g.GET("/:id/harvests", harvestCtrl.List)
	g.PATCH("/:id/harvests/:log_id", harvestCtrl.Patch)
	g.DELETE("/:id/harvests/:log_id", harvestCtrl.Delete)

	g.GET("/:id/assistant", assistantCtrl.History)
	g.POST("/:id/assistant", assistantCtrl.Ask)

	g.GET("/:id/progress", summaryCtrl.Progress)
	g.GET("/:id/summary", summaryCtrl.Summary)
	g.GET("/:id/weather", weatherCtrl.ForCrop)
	g.GET("/:id/report", reportCtrl.Export)

	api.GET("/market/quotes", marketCtrl.List)
	api.GET("/market/quotes/:id", marketCtrl.Get)
	api.GET("/weather", weatherCtrl.Current)
	api.GET("/map/config", weatherCtrl.MapConfig)

	// KB endpoints
	api.POST("/kb/ingest", kbCtrl.IngestText)
	api.POST("/kb/ingest/url", kbCtrl.IngestURL)
	api.GET("/kb/articles", kbCtrl.ListArticles)
	api.GET("/kb/search", kbCtrl.Search)

	return e
}
