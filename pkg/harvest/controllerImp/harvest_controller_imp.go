package controllerImp

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"lavoura/entities"
	croprepo "lavoura/pkg/crop/repository"
	"lavoura/pkg/harvest/service"
)

type HarvestCtrl struct {
	svc   service.HarvestService
	crops croprepo.CropRepository
}

func New(svc service.HarvestService, crops croprepo.CropRepository) *HarvestCtrl {
	return &HarvestCtrl{svc: svc, crops: crops}
}

type logReq struct {
	Date            string  `json:"date"` // YYYY-MM-DD, defaults to today
	Quantity        float64 `json:"quantity"`
	Unit            string  `json:"unit"`
	StorageLocation string  `json:"storage_location"`
	QualityNote     string  `json:"quality_note"`
}

// ownedCrop checks the crop exists and belongs to the caller.
func (h *HarvestCtrl) ownedCrop(c echo.Context) (string, bool) {
	uid := c.Get("uid").(string)
	id := c.Param("id")
	if _, err := h.crops.FindByID(id, uid); err != nil {
		return "", false
	}
	return id, true
}

func (h *HarvestCtrl) Create(c echo.Context) error {
	cropID, ok := h.ownedCrop(c)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "crop not found"})
	}
	var req logReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	d := time.Now()
	if req.Date != "" {
		if dd, err := time.Parse("2006-01-02", req.Date); err == nil {
			d = dd
		}
	}
	l := &entities.HarvestLog{
		LogID:           uuid.NewString(),
		CropID:          cropID,
		Date:            d,
		Quantity:        req.Quantity,
		Unit:            req.Unit,
		StorageLocation: req.StorageLocation,
		QualityNote:     req.QualityNote,
	}
	if err := h.svc.Add(l); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, l)
}

func (h *HarvestCtrl) List(c echo.Context) error {
	cropID, ok := h.ownedCrop(c)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "crop not found"})
	}
	out, err := h.svc.List(cropID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *HarvestCtrl) Patch(c echo.Context) error {
	cropID, ok := h.ownedCrop(c)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "crop not found"})
	}
	var p service.HarvestPatch
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	l, err := h.svc.Edit(c.Param("log_id"), cropID, p)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, l)
}

func (h *HarvestCtrl) Delete(c echo.Context) error {
	cropID, ok := h.ownedCrop(c)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "crop not found"})
	}
	if err := h.svc.Delete(c.Param("log_id"), cropID); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
