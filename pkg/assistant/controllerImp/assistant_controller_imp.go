package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lavoura/pkg/assistant/serviceImp"
)

type AssistantCtrl struct{ svc *serviceImp.AssistantSvc }

func New(svc *serviceImp.AssistantSvc) *AssistantCtrl { return &AssistantCtrl{svc} }

func (h *AssistantCtrl) History(c echo.Context) error {
	uid := c.Get("uid").(string)
	msgs, err := h.svc.History(c.Param("id"), uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, msgs)
}

func (h *AssistantCtrl) Ask(c echo.Context) error {
	uid := c.Get("uid").(string)
	var body struct {
		Question string `json:"question"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	msgs, err := h.svc.Ask(c.Param("id"), uid, body.Question)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, msgs)
}
