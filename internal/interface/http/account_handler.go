package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/postpilot/postpilot/internal/application"
	"github.com/postpilot/postpilot/internal/domain/entity"
	"github.com/postpilot/postpilot/pkg/response"
	"github.com/postpilot/postpilot/pkg/validation"
)

type AccountHandler struct {
	Svc    *application.AccountService
	Logger *logrus.Logger
}

func NewAccountHandler(svc *application.AccountService, logger *logrus.Logger) *AccountHandler {
	return &AccountHandler{Svc: svc, Logger: logger}
}

// List GET /api/accounts
func (h *AccountHandler) List(c *gin.Context) {
	uid := c.GetString("userID")
	accounts, err := h.Svc.List(uid)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to list accounts", nil)
		return
	}
	response.Success(c, http.StatusOK, viewAccounts(accounts), "accounts", nil)
}

// Connect POST /api/accounts/:platform/connect
func (h *AccountHandler) Connect(c *gin.Context) {
	h.setConnected(c, true)
}

// Disconnect POST /api/accounts/:platform/disconnect
func (h *AccountHandler) Disconnect(c *gin.Context) {
	h.setConnected(c, false)
}

func (h *AccountHandler) setConnected(c *gin.Context, connected bool) {
	uid := c.GetString("userID")
	platform := entity.Platform(c.Param("platform"))
	a, err := h.Svc.SetConnected(uid, platform, connected)
	if err != nil {
		if errors.Is(err, application.ErrUnknownPlatform) {
			response.Error[any](c, http.StatusNotFound, "unknown platform", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to update account", nil)
		return
	}
	response.Success(c, http.StatusOK, viewAccount(*a), "account updated", nil)
}

type instagramConnectRequest struct {
	Code        string `json:"code" binding:"required"`
	RedirectURI string `json:"redirect_uri" binding:"required,url"`
}

// ConnectInstagram POST /api/accounts/instagram/connect
// Completes the OAuth flow server-side. Any upstream failure collapses
// into one generic message; the account is left untouched.
func (h *AccountHandler) ConnectInstagram(c *gin.Context) {
	uid := c.GetString("userID")
	var req instagramConnectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	a, err := h.Svc.ConnectInstagram(c.Request.Context(), uid, req.Code, req.RedirectURI)
	if err != nil {
		response.Error[any](c, http.StatusBadGateway, "failed to connect Instagram account", nil)
		return
	}
	response.Success(c, http.StatusOK, viewAccount(*a), "instagram connected", nil)
}
