package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"lavoura/pkg/wizard/service"
	"lavoura/pkg/wizard/serviceImp"
	"lavoura/pkg/wizard/types"
)

type WizardCtrl struct{ svc service.WizardService }

func New(svc service.WizardService) *WizardCtrl { return &WizardCtrl{svc} }

func (h *WizardCtrl) Start(c echo.Context) error {
	var body struct {
		Mode string `json:"mode"`
	}
	_ = c.Bind(&body) // empty body → full mode
	sess := h.svc.Start(types.Mode(body.Mode))
	return c.JSON(http.StatusCreated, sess)
}

func (h *WizardCtrl) Get(c echo.Context) error {
	sess, err := h.svc.Get(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "session not found"})
	}
	return c.JSON(http.StatusOK, sess)
}

func (h *WizardCtrl) SetFields(c echo.Context) error {
	var p service.DraftPatch
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	sess, err := h.svc.SetFields(c.Param("id"), p)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, sess)
}

func (h *WizardCtrl) Next(c echo.Context) error {
	var body struct {
		ConfirmSkipLocation bool `json:"confirm_skip_location"`
	}
	_ = c.Bind(&body)
	sess, err := h.svc.Next(c.Param("id"), body.ConfirmSkipLocation)
	if err != nil {
		if errors.Is(err, serviceImp.ErrNeedsConfirmation) {
			return c.JSON(http.StatusConflict, map[string]any{
				"error":              err.Error(),
				"needs_confirmation": true,
			})
		}
		var ve *serviceImp.ValidationError
		if errors.As(err, &ve) {
			return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": ve.Msg})
		}
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, sess)
}

func (h *WizardCtrl) Previous(c echo.Context) error {
	sess, err := h.svc.Previous(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, sess)
}

func (h *WizardCtrl) Submit(c echo.Context) error {
	uid := c.Get("uid").(string)
	crop, err := h.svc.Submit(c.Param("id"), uid)
	if err != nil {
		var ve *serviceImp.ValidationError
		if errors.As(err, &ve) {
			return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": ve.Msg})
		}
		if errors.Is(err, serviceImp.ErrSessionNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		// plan generation or store failure: session stays intact, caller retries
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, crop)
}
