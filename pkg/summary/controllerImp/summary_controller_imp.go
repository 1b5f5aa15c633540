package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lavoura/pkg/summary"
)

type SummaryCtrl struct{ svc *summary.Service }

func New(svc *summary.Service) *SummaryCtrl { return &SummaryCtrl{svc} }

func (h *SummaryCtrl) Progress(c echo.Context) error {
	uid := c.Get("uid").(string)
	p, err := h.svc.Progress(c.Param("id"), uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "crop not found"})
	}
	return c.JSON(http.StatusOK, p)
}

func (h *SummaryCtrl) Summary(c echo.Context) error {
	uid := c.Get("uid").(string)
	s, err := h.svc.Summary(c.Param("id"), uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "crop not found"})
	}
	return c.JSON(http.StatusOK, s)
}
