package application

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/souravverma/portfolio-backend/internal/domain/entity"
	repo "github.com/souravverma/portfolio-backend/internal/domain/repository"
	"github.com/souravverma/portfolio-backend/pkg/helpers"
	"github.com/souravverma/portfolio-backend/pkg/mailer"
)

var (
	ErrInvalidStatus = errors.New("invalid status value")
)

// ContactService handles the public contact intake and the admin-side message
// workflow. The RabbitMQ publisher and Elasticsearch client are optional; nil
// disables the notification pipeline and search respectively.
type ContactService struct {
	Repo     repo.ContactRepository
	Logger   *logrus.Logger
	Pub      *helpers.RabbitPublisher
	ES       *elasticsearch.Client
	ESIndex  string
	NotifyTo string
}

func NewContactService(r repo.ContactRepository, logger *logrus.Logger, pub *helpers.RabbitPublisher, es *elasticsearch.Client, esIndex, notifyTo string) *ContactService {
	return &ContactService{Repo: r, Logger: logger, Pub: pub, ES: es, ESIndex: esIndex, NotifyTo: notifyTo}
}

// SubmitInput is a validated contact form submission. The route layer
// guarantees field constraints; Service is already a member of the enum.
type SubmitInput struct {
	Name    string
	Email   string
	Phone   string
	Service entity.ContactService
	Message string
}

// Pagination describes one page of a filtered listing.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// Submit persists the message with status "new". Notification and search
// indexing are best-effort side effects; their failure never fails the intake.
func (s *ContactService) Submit(ctx context.Context, in SubmitInput) (*entity.Contact, error) {
	m := &entity.Contact{
		Name:    in.Name,
		Email:   strings.ToLower(in.Email),
		Phone:   in.Phone,
		Service: in.Service,
		Message: in.Message,
	}
	if err := s.Repo.Create(m); err != nil {
		return nil, err
	}

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"name": m.Name, "email": m.Email}).Info("new contact message")
	}

	s.indexMessage(ctx, m)
	s.publishNotification(ctx, m)
	return m, nil
}

// List returns the filtered, newest-first page of messages plus pagination
// metadata. Page and limit are normalized to 1 and 10 when out of range.
func (s *ContactService) List(ctx context.Context, f repo.ContactFilter) ([]*entity.Contact, *Pagination, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 {
		f.Limit = 10
	}
	items, total, err := s.Repo.List(f)
	if err != nil {
		return nil, nil, err
	}
	p := &Pagination{
		Page:  f.Page,
		Limit: f.Limit,
		Total: total,
		Pages: int(math.Ceil(float64(total) / float64(f.Limit))),
	}
	return items, p, nil
}

// UpdateStatus transitions a message to newStatus. Values outside the status
// enum fail with ErrInvalidStatus before any store access.
func (s *ContactService) UpdateStatus(ctx context.Context, id, newStatus string) (*entity.Contact, error) {
	status := entity.ContactStatus(newStatus)
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	return s.Repo.UpdateStatus(id, status)
}

func (s *ContactService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.deleteFromIndex(ctx, id)
	return nil
}

func (s *ContactService) Stats(ctx context.Context) (*repo.ContactStats, error) {
	return s.Repo.Stats()
}

func (s *ContactService) publishNotification(ctx context.Context, m *entity.Contact) {
	if s.Pub == nil || s.NotifyTo == "" {
		return
	}
	job := mailer.ContactNotification{
		To:         s.NotifyTo,
		MessageID:  m.ID,
		Name:       m.Name,
		Email:      m.Email,
		Phone:      m.Phone,
		Service:    string(m.Service),
		Message:    m.Message,
		ReceivedAt: m.CreatedAt,
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("message_id", m.ID).Warn("notification publish failed")
	}
}

func (s *ContactService) indexMessage(ctx context.Context, m *entity.Contact) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	doc := map[string]any{
		"id":         m.ID,
		"name":       m.Name,
		"email":      m.Email,
		"service":    string(m.Service),
		"message":    m.Message,
		"status":     string(m.Status),
		"created_at": m.CreatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESIndex, DocumentID: m.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("message_id", m.ID).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("message_id", m.ID).Warn("es index response error")
	}
}

func (s *ContactService) deleteFromIndex(ctx context.Context, id string) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESIndex, DocumentID: id}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("message_id", id).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}

// Search performs a multi_match query over name, email and message via
// Elasticsearch. Returns an empty slice when no client is configured.
func (s *ContactService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"name^2", "email", "message"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESIndex),
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
