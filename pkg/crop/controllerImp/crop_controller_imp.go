package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"lavoura/entities"
	"lavoura/pkg/crop/service"
)

type CropCtrl struct{ svc service.CropService }

func New(svc service.CropService) *CropCtrl { return &CropCtrl{svc} }

func (h *CropCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	out, err := h.svc.List(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CropCtrl) Get(c echo.Context) error {
	uid := c.Get("uid").(string)
	crop, err := h.svc.Get(c.Param("id"), uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "crop not found"})
	}
	return c.JSON(http.StatusOK, crop)
}

func (h *CropCtrl) Patch(c echo.Context) error {
	uid := c.Get("uid").(string)
	var p service.CropPatch
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	crop, err := h.svc.Patch(c.Param("id"), uid, p)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, crop)
}

func (h *CropCtrl) Delete(c echo.Context) error {
	uid := c.Get("uid").(string)
	if err := h.svc.Delete(c.Param("id"), uid); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *CropCtrl) AddMaterial(c echo.Context) error {
	uid := c.Get("uid").(string)
	var m entities.Material
	if err := c.Bind(&m); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	crop, err := h.svc.AddMaterial(c.Param("id"), uid, m)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, crop)
}

func (h *CropCtrl) ReplaceMaterial(c echo.Context) error {
	uid := c.Get("uid").(string)
	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad index"})
	}
	var m entities.Material
	if err := c.Bind(&m); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	crop, err := h.svc.ReplaceMaterial(c.Param("id"), uid, idx, m)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, crop)
}

func (h *CropCtrl) RemoveMaterial(c echo.Context) error {
	uid := c.Get("uid").(string)
	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad index"})
	}
	crop, err := h.svc.RemoveMaterial(c.Param("id"), uid, idx)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, crop)
}
