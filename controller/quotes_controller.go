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

type QuotesController struct {
	quotesSvc service.QuotesService
	apiKey    string
}

func NewQuotesController(quotesSvc service.QuotesService, apiKey string) *QuotesController {
	return &QuotesController{
		quotesSvc: quotesSvc,
		apiKey:    apiKey,
	}
}

func (ctrl *QuotesController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/quotes", ctrl.GetQuotes)
	router.POST("/depth", ctrl.GetDepth)
	router.POST("/history", ctrl.GetHistory)
}

// GetQuotes returns the normalized quote record.
// @Summary      Get Live Quote
// @Description  Fetches a normalized quote for a symbol. Unavailable data comes back as zeros.
// @Tags         MarketData
// @Accept       json
// @Produce      json
// @Param        request  body      model.QuotesRequest  true  "Quote request"
// @Success      200      {object}  model.Response{data=model.Quote}
// @Failure      400      {object}  model.Response
// @Failure      403      {object}  model.Response
// @Router       /quotes [post]
func (ctrl *QuotesController) GetQuotes(c *gin.Context) {
	req, ok := ctrl.bindQuoteRequest(c)
	if !ok {
		return
	}

	quote := ctrl.quotesSvc.GetQuote(c.Request.Context(), req.Symbol, req.Exchange)
	respondSuccess(c, "Fetch Success", quote)
}

// GetDepth returns the five-level market depth.
// @Summary      Get Market Depth
// @Description  Fetches top-5 bid/ask levels, zero-padded when the vendor returns fewer.
// @Tags         MarketData
// @Accept       json
// @Produce      json
// @Param        request  body      model.QuotesRequest  true  "Depth request"
// @Success      200      {object}  model.Response{data=model.Depth}
// @Failure      400      {object}  model.Response
// @Failure      403      {object}  model.Response
// @Router       /depth [post]
func (ctrl *QuotesController) GetDepth(c *gin.Context) {
	req, ok := ctrl.bindQuoteRequest(c)
	if !ok {
		return
	}

	depth := ctrl.quotesSvc.GetDepth(c.Request.Context(), req.Symbol, req.Exchange)
	respondSuccess(c, "Fetch Success", depth)
}

// GetHistory always returns an empty series: the vendor has no
// historical data API.
// @Summary      Get Historical Data
// @Description  Not supported by this vendor; always returns an empty series.
// @Tags         MarketData
// @Accept       json
// @Produce      json
// @Param        request  body      model.HistoryRequest  true  "History request"
// @Success      200      {object}  model.Response{data=[]model.HistoryBar}
// @Failure      400      {object}  model.Response
// @Failure      403      {object}  model.Response
// @Router       /history [post]
func (ctrl *QuotesController) GetHistory(c *gin.Context) {
	var req model.HistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request payload", err)
		return
	}

	if !auth.VerifyApiKey(req.ApiKey, ctrl.apiKey) {
		respondError(c, http.StatusForbidden, "Invalid API key", nil)
		return
	}

	bars := ctrl.quotesSvc.GetHistory(c.Request.Context(), &req)
	respondSuccess(c, "Historical data not supported by this vendor", bars)
}

func (ctrl *QuotesController) bindQuoteRequest(c *gin.Context) (*model.QuotesRequest, bool) {
	var req model.QuotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request payload", err)
		return nil, false
	}

	if !auth.VerifyApiKey(req.ApiKey, ctrl.apiKey) {
		respondError(c, http.StatusForbidden, "Invalid API key", nil)
		return nil, false
	}

	if err := zog.Struct(validator.QuoteShape).Validate(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Symbol and exchange are required", nil)
		return nil, false
	}
	return &req, true
}
