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

type OptionSymbolController struct {
	symbolSvc service.OptionSymbolService
	apiKey    string
}

func NewOptionSymbolController(symbolSvc service.OptionSymbolService, apiKey string) *OptionSymbolController {
	return &OptionSymbolController{
		symbolSvc: symbolSvc,
		apiKey:    apiKey,
	}
}

func (ctrl *OptionSymbolController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/optionsymbol", ctrl.ResolveSymbol)
}

// ResolveSymbol resolves an ATM/ITM/OTM offset into a listed contract.
// @Summary      Resolve Option Symbol
// @Description  Calculates the ATM strike from the underlying LTP, applies the offset and looks the contract up in the symbol master.
// @Tags         Options
// @Accept       json
// @Produce      json
// @Param        request  body      model.OptionSymbolRequest  true  "Option symbol request"
// @Success      200      {object}  model.Response{data=model.OptionSymbolResult}
// @Failure      400      {object}  model.Response
// @Failure      403      {object}  model.Response
// @Failure      404      {object}  model.Response
// @Router       /optionsymbol [post]
func (ctrl *OptionSymbolController) ResolveSymbol(c *gin.Context) {
	var req model.OptionSymbolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request payload", err)
		return
	}

	if !auth.VerifyApiKey(req.ApiKey, ctrl.apiKey) {
		respondError(c, http.StatusForbidden, "Invalid API key", nil)
		return
	}

	symbolValidation := zog.Struct(validator.OptionSymbolShape).
		TestFunc(validator.OffsetTest)
	if err := symbolValidation.Validate(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid Request", nil)
		return
	}

	result, err := ctrl.symbolSvc.Resolve(c.Request.Context(), &req)
	if err != nil {
		respondError(c, statusForError(err), "Failed to resolve option symbol", err)
		return
	}

	respondSuccess(c, "Symbol resolved", result)
}
