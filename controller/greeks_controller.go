package controller

import (
	"net/http"

	"github.com/fwwkol/openalgo/auth"
	"github.com/fwwkol/openalgo/model"
	"github.com/fwwkol/openalgo/service"
	"github.com/fwwkol/openalgo/validator"

	"github.com/Oudwins/zog"
	"github.com/gin-gonic/gin"
)

type GreeksController struct {
	greeksSvc service.GreeksService
	apiKey    string
}

func NewGreeksController(greeksSvc service.GreeksService, apiKey string) *GreeksController {
	return &GreeksController{
		greeksSvc: greeksSvc,
		apiKey:    apiKey,
	}
}

func (ctrl *GreeksController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/optiongreeks", ctrl.CalculateGreeks)
}

// CalculateGreeks computes IV and Greeks from live prices.
// @Summary      Calculate Option Greeks
// @Description  Parses the option symbol, fetches spot and option prices and solves IV and Greeks.
// @Tags         Options
// @Accept       json
// @Produce      json
// @Param        request  body      model.GreeksRequest  true  "Greeks request"
// @Success      200      {object}  model.Response{data=model.GreeksResult}
// @Failure      400      {object}  model.Response
// @Failure      403      {object}  model.Response
// @Failure      404      {object}  model.Response
// @Failure      500      {object}  model.Response
// @Router       /optiongreeks [post]
func (ctrl *GreeksController) CalculateGreeks(c *gin.Context) {
	var req model.GreeksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request payload", err)
		return
	}

	if !auth.VerifyApiKey(req.ApiKey, ctrl.apiKey) {
		respondError(c, http.StatusForbidden, "Invalid API key", nil)
		return
	}

	greeksValidation := zog.Struct(validator.GreeksShape).
		TestFunc(validator.InterestRateTest)
	if err := greeksValidation.Validate(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid Request", nil)
		return
	}

	result, err := ctrl.greeksSvc.Calculate(c.Request.Context(), &req)
	if err != nil {
		respondError(c, statusForError(err), "Failed to calculate option greeks", err)
		return
	}

	respondSuccess(c, "Greeks calculated", result)
}
