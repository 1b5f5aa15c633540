package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lavoura/entities"
	"lavoura/pkg/timeline/service"
)

type TimelineCtrl struct{ svc service.TimelineService }

func New(svc service.TimelineService) *TimelineCtrl { return &TimelineCtrl{svc} }

func (h *TimelineCtrl) AddStage(c echo.Context) error {
	uid := c.Get("uid").(string)
	var body struct {
		Title      string   `json:"title"`
		TargetDate string   `json:"target_date"`
		Tasks      []string `json:"tasks"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	crop, err := h.svc.AddStage(c.Param("id"), uid, body.Title, body.TargetDate, body.Tasks)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, crop)
}

func (h *TimelineCtrl) RemoveStage(c echo.Context) error {
	uid := c.Get("uid").(string)
	crop, err := h.svc.RemoveStage(c.Param("id"), uid, c.Param("stage_id"))
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, crop)
}

func (h *TimelineCtrl) PatchStage(c echo.Context) error {
	uid := c.Get("uid").(string)
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	crop, err := h.svc.SetStageStatus(c.Param("id"), uid, c.Param("stage_id"), entities.StageStatus(body.Status))
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, crop)
}

func (h *TimelineCtrl) ToggleTask(c echo.Context) error {
	uid := c.Get("uid").(string)
	crop, err := h.svc.ToggleTask(c.Param("id"), uid, c.Param("task_id"))
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, crop)
}
