package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/postpilot/postpilot/internal/application"
	"github.com/postpilot/postpilot/internal/domain/entity"
	"github.com/postpilot/postpilot/pkg/response"
)

type AnalyticsHandler struct {
	Svc    *application.AnalyticsService
	Logger *logrus.Logger
}

func NewAnalyticsHandler(svc *application.AnalyticsService, logger *logrus.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{Svc: svc, Logger: logger}
}

// All GET /api/analytics
func (h *AnalyticsHandler) All(c *gin.Context) {
	all, err := h.Svc.All(c.Request.Context())
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to load analytics", nil)
		return
	}
	response.Success(c, http.StatusOK, all, "analytics", nil)
}

// Get GET /api/analytics/:platform
// A platform with no recorded data is a plain 404, not a server error.
func (h *AnalyticsHandler) Get(c *gin.Context) {
	platform := entity.Platform(c.Param("platform"))
	a, ok, err := h.Svc.Get(platform)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to load analytics", nil)
		return
	}
	if !ok {
		response.Error[any](c, http.StatusNotFound, "no analytics for platform", nil)
		return
	}
	response.Success(c, http.StatusOK, a, "analytics", nil)
}
