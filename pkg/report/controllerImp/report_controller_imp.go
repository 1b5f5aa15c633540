package controllerImp

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	croprepo "lavoura/pkg/crop/repository"
	harvestrepo "lavoura/pkg/harvest/repository"
	"lavoura/pkg/report"
)

type ReportCtrl struct {
	crops croprepo.CropRepository
	logs  harvestrepo.HarvestRepository
}

func New(crops croprepo.CropRepository, logs harvestrepo.HarvestRepository) *ReportCtrl {
	return &ReportCtrl{crops: crops, logs: logs}
}

const xlsxMime = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (h *ReportCtrl) Export(c echo.Context) error {
	uid := c.Get("uid").(string)
	crop, err := h.crops.FindByID(c.Param("id"), uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "crop not found"})
	}
	logs, err := h.logs.ListByCrop(crop.CropID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	buf, err := report.Build(crop, logs)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="lavoura-%s.xlsx"`, crop.CropID))
	return c.Blob(http.StatusOK, xlsxMime, buf.Bytes())
}
