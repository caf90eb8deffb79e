package handlers

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/postpilot/postpilot/config"
	repo "github.com/postpilot/postpilot/internal/domain/repository"
	"github.com/postpilot/postpilot/pkg/helpers"
	"github.com/postpilot/postpilot/pkg/mailer"
	"github.com/postpilot/postpilot/pkg/response"
	"github.com/postpilot/postpilot/pkg/validation"
)

// AuthHandler owns the password-reset flow. Reset tokens live in Redis
// with a short TTL; the email leaves through the RabbitMQ worker.
type AuthHandler struct {
	Repo   repo.UserRepository
	RDB    *redis.Client
	Logger *logrus.Logger
	Cfg    *config.Config
	Pub    *helpers.RabbitPublisher
	DB     *pgxpool.Pool
}

func NewAuthHandler(r repo.UserRepository, rdb *redis.Client, logger *logrus.Logger, cfg *config.Config, pub *helpers.RabbitPublisher, db *pgxpool.Pool) *AuthHandler {
	return &AuthHandler{Repo: r, RDB: rdb, Logger: logger, Cfg: cfg, Pub: pub, DB: db}
}

func keyResetToken(t string) string { return "pwd:reset:token:" + t }

func clientIP(c *gin.Context) string {
	if ip := c.GetString("real_ip"); ip != "" {
		return ip
	}
	return c.ClientIP()
}

func (h *AuthHandler) genToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// audit records an auth event. Best-effort: a failed insert never blocks
// the request.
func (h *AuthHandler) audit(c *gin.Context, userID, email, action string, metadata map[string]any) {
	if h.DB == nil {
		return
	}
	md, _ := json.Marshal(metadata)
	var uid any
	if userID != "" {
		uid = userID
	}
	_, err := h.DB.Exec(c, `
		INSERT INTO audit_logs (user_id, email, action, ip, user_agent, metadata)
		VALUES ($1, NULLIF($2, ''), $3, NULLIF($4, ''), NULLIF($5, ''), $6)
	`, uid, email, action, clientIP(c), c.GetHeader("User-Agent"), md)
	if err != nil && h.Logger != nil {
		h.Logger.WithError(err).WithField("action", action).Warn("audit insert failed")
	}
}

// ResetInit POST /api/auth/reset/init {email}
// Always returns OK to avoid account enumeration.
func (h *AuthHandler) ResetInit(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	link := ""
	u, _ := h.Repo.GetByEmail(req.Email)
	if u != nil && h.RDB != nil {
		tok, err := h.genToken(32)
		if err != nil {
			response.Error[any](c, http.StatusInternalServerError, "token generation failed", nil)
			return
		}
		h.RDB.Set(c, keyResetToken(tok), u.ID, 30*time.Minute)
		link = h.Cfg.ResetPasswordURL + "?token=" + tok
		if h.Pub != nil && h.Cfg != nil && h.Cfg.MailSendEnabled {
			job := mailer.EmailJob{
				To:      u.Email,
				Subject: "Reset your password",
				Text: "Hi " + u.Name + ",\n\n" +
					"A password reset was requested for your account. Open the link below within 30 minutes to choose a new password:\n\n" +
					link + "\n\n" +
					"If you did not request this, you can ignore this email.",
			}
			_ = h.Pub.PublishJSON(c, job)
		}
		h.audit(c, u.ID, u.Email, "reset_init_issue", nil)
	} else {
		h.audit(c, "", req.Email, "reset_init_unknown", nil)
	}
	response.Success(c, http.StatusOK, gin.H{"reset_link": link}, "reset link", nil)
}

// ResetConfirm POST /api/auth/reset/confirm {token, new_password}
func (h *AuthHandler) ResetConfirm(c *gin.Context) {
	var req struct {
		Token       string `json:"token" binding:"required"`
		NewPassword string `json:"new_password" binding:"required,pwd"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if h.RDB == nil {
		response.Error[any](c, http.StatusInternalServerError, "reset unavailable", nil)
		return
	}
	uid, err := h.RDB.Get(c, keyResetToken(req.Token)).Result()
	if err != nil || uid == "" {
		response.Error[any](c, http.StatusBadRequest, "invalid or expired token", nil)
		return
	}
	hash, err := helpers.HashPassword(req.NewPassword)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "hash fail", nil)
		return
	}
	if err := h.Repo.UpdatePassword(uid, hash); err != nil {
		response.Error[any](c, http.StatusInternalServerError, "update fail", nil)
		return
	}
	h.RDB.Del(c, keyResetToken(req.Token))
	h.audit(c, uid, "", "reset_confirm", map[string]any{"token": "redacted"})
	response.Success[any](c, http.StatusOK, gin.H{"reset": true}, "password updated", nil)
}
