package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/postpilot/postpilot/internal/application"
	"github.com/postpilot/postpilot/internal/domain/entity"
	"github.com/postpilot/postpilot/pkg/response"
	"github.com/postpilot/postpilot/pkg/validation"
)

type PostHandler struct {
	Svc    *application.PostService
	Logger *logrus.Logger
}

func NewPostHandler(svc *application.PostService, logger *logrus.Logger) *PostHandler {
	return &PostHandler{Svc: svc, Logger: logger}
}

// createPostRequest accepts either a combined instant (scheduled) or the
// composer's split date and time fields.
type createPostRequest struct {
	Content       string            `json:"content" binding:"required"`
	Platforms     []entity.Platform `json:"platforms" binding:"required,dive,platform"`
	Scheduled     *time.Time        `json:"scheduled"`
	ScheduledDate string            `json:"scheduled_date" binding:"omitempty,datetime=2006-01-02"`
	ScheduledTime string            `json:"scheduled_time" binding:"omitempty,datetime=15:04"`
	Image         *string           `json:"image"`
}

// List GET /api/posts
func (h *PostHandler) List(c *gin.Context) {
	uid := c.GetString("userID")
	posts, err := h.Svc.List(uid)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to list posts", nil)
		return
	}
	response.Success(c, http.StatusOK, viewPosts(posts), "posts", nil)
}

// Create POST /api/posts
func (h *PostHandler) Create(c *gin.Context) {
	uid := c.GetString("userID")
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	if req.Scheduled != nil {
		// Direct path: schedule already combined by the client.
		p, err := h.Svc.Create(c.Request.Context(), uid, req.Content, req.Platforms, *req.Scheduled, req.Image)
		if err != nil {
			response.Error[any](c, http.StatusInternalServerError, "failed to create post", nil)
			return
		}
		response.Success(c, http.StatusCreated, viewPost(*p), "post created", nil)
		return
	}

	draft := application.Draft{
		Content:       req.Content,
		Platforms:     req.Platforms,
		ScheduledDate: req.ScheduledDate,
		ScheduledTime: req.ScheduledTime,
	}
	if req.Image != nil {
		draft.Image = *req.Image
	}
	p, fieldErrs, err := h.Svc.Compose(c.Request.Context(), uid, draft)
	if err != nil {
		if errors.Is(err, application.ErrInvalidDraft) {
			response.Error[any](c, http.StatusBadRequest, "invalid post", fieldErrs)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to create post", nil)
		return
	}
	response.Success(c, http.StatusCreated, viewPost(*p), "post created", nil)
}

// Search GET /api/posts/search?q=
func (h *PostHandler) Search(c *gin.Context) {
	uid := c.GetString("userID")
	q := c.Query("q")
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	hits, err := h.Svc.Search(c.Request.Context(), uid, q, size)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "search failed", nil)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", map[string]any{"count": len(hits)})
}

// UploadImage POST /api/posts/image (multipart field "image")
func (h *PostHandler) UploadImage(c *gin.Context) {
	uid := c.GetString("userID")
	fh, err := c.FormFile("image")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "image file is required", nil)
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "cannot read image file", nil)
		return
	}
	defer func() { _ = f.Close() }()

	url, err := h.Svc.UploadImage(c.Request.Context(), uid, f, fh.Filename, fh.Header.Get("Content-Type"))
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).WithField("user_id", uid).Warn("image upload failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "image upload failed", nil)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"url": url}, "image uploaded", nil)
}

// Calendar GET /api/calendar?year=2025&month=5
// Month defaults to the current one; the client steps through months
// itself and calls again.
func (h *PostHandler) Calendar(c *gin.Context) {
	uid := c.GetString("userID")
	now := time.Now()

	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid year", nil)
		return
	}
	monthNum, err := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	if err != nil || monthNum < 1 || monthNum > 12 {
		response.Error[any](c, http.StatusBadRequest, "month must be 1-12", nil)
		return
	}

	posts, err := h.Svc.List(uid)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to list posts", nil)
		return
	}
	cells := application.MaterializeCalendar(year, time.Month(monthNum), posts, now)
	response.Success(c, http.StatusOK, gin.H{
		"year":  year,
		"month": monthNum,
		"cells": viewCalendar(cells),
	}, "calendar", nil)
}
