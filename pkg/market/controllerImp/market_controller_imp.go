package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lavoura/pkg/market"
)

type MarketCtrl struct{ svc *market.Service }

func New(svc *market.Service) *MarketCtrl { return &MarketCtrl{svc} }

func (h *MarketCtrl) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Quotes())
}

func (h *MarketCtrl) Get(c echo.Context) error {
	id := c.Param("id")
	for _, q := range h.svc.Quotes() {
		if q.ID == id {
			return c.JSON(http.StatusOK, q)
		}
	}
	return c.JSON(http.StatusNotFound, map[string]string{"error": "quote not found"})
}
