package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	croprepo "lavoura/pkg/crop/repository"
	"lavoura/pkg/weather"
)

type WeatherCtrl struct {
	svc   *weather.Service
	crops croprepo.CropRepository
}

func New(svc *weather.Service, crops croprepo.CropRepository) *WeatherCtrl {
	return &WeatherCtrl{svc: svc, crops: crops}
}

// Current serves /weather?lat=&lng= ; missing params use the default center.
func (h *WeatherCtrl) Current(c echo.Context) error {
	var lat, lng *float64
	if v, err := strconv.ParseFloat(c.QueryParam("lat"), 64); err == nil {
		lat = &v
	}
	if v, err := strconv.ParseFloat(c.QueryParam("lng"), 64); err == nil {
		lng = &v
	}
	return c.JSON(http.StatusOK, h.svc.Current(lat, lng))
}

// ForCrop serves /crops/:id/weather using the plot center when set.
func (h *WeatherCtrl) ForCrop(c echo.Context) error {
	uid := c.Get("uid").(string)
	crop, err := h.crops.FindByID(c.Param("id"), uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "crop not found"})
	}
	return c.JSON(http.StatusOK, h.svc.Current(crop.Lat, crop.Lng))
}

// MapConfig tells the map widget where to center before a plot has
// coordinates of its own.
func (h *WeatherCtrl) MapConfig(c echo.Context) error {
	lat, lng := h.svc.DefaultCenter()
	return c.JSON(http.StatusOK, map[string]float64{"lat": lat, "lng": lng})
}
