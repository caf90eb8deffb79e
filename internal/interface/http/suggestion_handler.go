package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/postpilot/postpilot/pkg/response"
	"github.com/postpilot/postpilot/pkg/suggest"
	"github.com/postpilot/postpilot/pkg/validation"
)

type SuggestionHandler struct {
	Client *suggest.Client
	Logger *logrus.Logger
}

func NewSuggestionHandler(client *suggest.Client, logger *logrus.Logger) *SuggestionHandler {
	return &SuggestionHandler{Client: client, Logger: logger}
}

type suggestionRequest struct {
	Platform string `json:"platform" binding:"required,platform"`
	KPI      string `json:"kpi" binding:"required,oneof=engagement reach conversion awareness traffic"`
	Topic    string `json:"topic" binding:"required,notblank"`
}

// Suggest POST /api/suggestions
// Proxies to the generator; every failure looks the same to the caller.
func (h *SuggestionHandler) Suggest(c *gin.Context) {
	var req suggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	res, err := h.Client.Suggest(c.Request.Context(), suggest.Request{
		Platform: req.Platform,
		KPI:      req.KPI,
		Topic:    req.Topic,
	})
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).WithField("platform", req.Platform).Warn("content suggestions failed")
		}
		response.Error[any](c, http.StatusBadGateway, "failed to get content suggestions", nil)
		return
	}
	response.Success(c, http.StatusOK, res, "content suggestions", nil)
}
