package application

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/postpilot/postpilot/internal/domain/entity"
	repo "github.com/postpilot/postpilot/internal/domain/repository"
	"github.com/postpilot/postpilot/pkg/helpers"
)

// ErrInvalidDraft signals that composer validation failed; the field
// errors travel alongside it in the Compose return value.
var ErrInvalidDraft = errors.New("invalid draft")

// PostService creates and lists scheduled posts. Image bytes go to GCS,
// post content is mirrored into Elasticsearch for search; both are
// optional collaborators and skipped when not configured.
type PostService struct {
	Repo         repo.PostRepository
	GCS          *storage.Client
	GCSBucket    string
	ES           *elasticsearch.Client
	ESPostsIndex string
	Logger       *logrus.Logger
}

func NewPostService(r repo.PostRepository, gcs *storage.Client, gcsBucket string, es *elasticsearch.Client, esPostsIndex string, logger *logrus.Logger) *PostService {
	return &PostService{
		Repo:         r,
		GCS:          gcs,
		GCSBucket:    gcsBucket,
		ES:           es,
		ESPostsIndex: esPostsIndex,
		Logger:       logger,
	}
}

// Compose validates a draft and, when it passes, stores it as a
// scheduled post. Field errors are returned without touching the store.
func (s *PostService) Compose(ctx context.Context, userID string, d Draft) (*entity.Post, []FieldError, error) {
	if errs := d.Validate(); len(errs) > 0 {
		return nil, errs, ErrInvalidDraft
	}
	scheduled, err := d.Schedule()
	if err != nil {
		return nil, []FieldError{{Field: "date", Message: "invalid date/time"}}, ErrInvalidDraft
	}
	var image *string
	if d.Image != "" {
		img := d.Image
		image = &img
	}
	return s.create(ctx, userID, d.Content, d.Platforms, scheduled, image)
}

// Create stores a post whose schedule is already a single instant (the
// mock API request shape). The store does not re-validate platform
// limits; that stays a composer concern.
func (s *PostService) Create(ctx context.Context, userID, content string, platforms []entity.Platform, scheduled time.Time, image *string) (*entity.Post, error) {
	p, _, err := s.create(ctx, userID, content, platforms, scheduled, image)
	return p, err
}

func (s *PostService) create(ctx context.Context, userID, content string, platforms []entity.Platform, scheduled time.Time, image *string) (*entity.Post, []FieldError, error) {
	p := &entity.Post{
		UserID:    userID,
		Content:   content,
		Platforms: platforms,
		Scheduled: scheduled,
		Status:    entity.StatusScheduled,
		Image:     image,
	}
	if err := s.Repo.Create(p); err != nil {
		return nil, nil, err
	}
	_ = s.indexPost(ctx, p)
	return p, nil, nil
}

// List returns the user's posts in insertion order.
func (s *PostService) List(userID string) ([]entity.Post, error) {
	return s.Repo.ListByUser(userID)
}

// UploadImage stores an attachment in GCS and returns its public URL.
func (s *PostService) UploadImage(ctx context.Context, userID string, r io.Reader, filename, contentType string) (string, error) {
	if s.GCS == nil || s.GCSBucket == "" {
		return "", errors.New("gcs not configured")
	}
	id := uuid.NewString()
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("posts", userID, id+ext))
	return helpers.UploadImageToGCS(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
}

func (s *PostService) indexPost(ctx context.Context, p *entity.Post) error {
	if s.ES == nil || s.ESPostsIndex == "" {
		return nil
	}
	doc := map[string]any{
		"id":        p.ID,
		"user_id":   p.UserID,
		"content":   p.Content,
		"platforms": p.Platforms,
		"scheduled": p.Scheduled.Format(time.RFC3339),
		"status":    p.Status,
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESPostsIndex, DocumentID: p.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("post_id", p.ID).Warn("es index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("post_id", p.ID).Warn("es index response error")
	}
	return nil
}

// Search runs a match query over the user's post content.
func (s *PostService) Search(ctx context.Context, userID, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESPostsIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"must":   map[string]any{"match": map[string]any{"content": q}},
				"filter": map[string]any{"term": map[string]any{"user_id": userID}},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESPostsIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}
	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
