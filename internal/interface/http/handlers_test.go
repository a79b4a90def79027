package handlers

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/souravverma/portfolio-backend/config"
	"github.com/souravverma/portfolio-backend/internal/application"
	"github.com/souravverma/portfolio-backend/internal/domain/entity"
	repo "github.com/souravverma/portfolio-backend/internal/domain/repository"
	"github.com/souravverma/portfolio-backend/pkg/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
	validation.Init()
}

func testConfig() *config.Config {
	return &config.Config{Env: "test", Port: "5000"}
}

// envelope mirrors the response wrapper for assertions.
type envelope struct {
	Status  int               `json:"status"`
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Meta    json.RawMessage   `json:"meta"`
	Errors  map[string]string `json:"errors"`
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

// Minimal in-memory stores for exercising handlers end to end.

type memContacts struct {
	seq      int
	contacts []*entity.Contact
}

func (f *memContacts) Create(m *entity.Contact) error {
	f.seq++
	m.ID = fmt.Sprintf("msg-%d", f.seq)
	m.Status = entity.StatusNew
	m.CreatedAt = time.Now()
	f.contacts = append([]*entity.Contact{m}, f.contacts...)
	return nil
}

func (f *memContacts) GetByID(id string) (*entity.Contact, error) {
	for _, m := range f.contacts {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *memContacts) List(fl repo.ContactFilter) ([]*entity.Contact, int64, error) {
	total := int64(len(f.contacts))
	start := (fl.Page - 1) * fl.Limit
	if start >= len(f.contacts) {
		return nil, total, nil
	}
	end := start + fl.Limit
	if end > len(f.contacts) {
		end = len(f.contacts)
	}
	return f.contacts[start:end], total, nil
}

func (f *memContacts) UpdateStatus(id string, status entity.ContactStatus) (*entity.Contact, error) {
	m, err := f.GetByID(id)
	if err != nil {
		return nil, err
	}
	m.Status = status
	return m, nil
}

func (f *memContacts) Delete(id string) error {
	for i, m := range f.contacts {
		if m.ID == id {
			f.contacts = append(f.contacts[:i], f.contacts[i+1:]...)
			return nil
		}
	}
	return repo.ErrNotFound
}

func (f *memContacts) Stats() (*repo.ContactStats, error) {
	return &repo.ContactStats{TotalMessages: int64(len(f.contacts))}, nil
}

type memPortfolio struct {
	seq   int
	items []*entity.PortfolioItem
}

func (f *memPortfolio) Create(p *entity.PortfolioItem) error {
	f.seq++
	p.ID = fmt.Sprintf("item-%d", f.seq)
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	f.items = append(f.items, p)
	return nil
}

func (f *memPortfolio) List(activeOnly bool) ([]*entity.PortfolioItem, error) {
	var out []*entity.PortfolioItem
	for _, p := range f.items {
		if activeOnly && !p.IsActive {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *memPortfolio) Update(p *entity.PortfolioItem) error {
	for i, ex := range f.items {
		if ex.ID == p.ID {
			f.items[i] = p
			return nil
		}
	}
	return repo.ErrNotFound
}

func (f *memPortfolio) Delete(id string) error {
	for i, p := range f.items {
		if p.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return repo.ErrNotFound
}

func (f *memPortfolio) Count() (int64, error) { return int64(len(f.items)), nil }

type memServices struct {
	seq   int
	items []*entity.Service
}

func (f *memServices) Create(s *entity.Service) error {
	f.seq++
	s.ID = fmt.Sprintf("svc-%d", f.seq)
	s.CreatedAt = time.Now()
	s.UpdatedAt = s.CreatedAt
	f.items = append(f.items, s)
	return nil
}

func (f *memServices) List(activeOnly bool) ([]*entity.Service, error) {
	var out []*entity.Service
	for _, s := range f.items {
		if activeOnly && !s.IsActive {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (f *memServices) Update(s *entity.Service) error {
	for i, ex := range f.items {
		if ex.ID == s.ID {
			f.items[i] = s
			return nil
		}
	}
	return repo.ErrNotFound
}

func (f *memServices) Delete(id string) error {
	for i, s := range f.items {
		if s.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return repo.ErrNotFound
}

func (f *memServices) Count() (int64, error) { return int64(len(f.items)), nil }

func newContactRouter() (*gin.Engine, *memContacts) {
	store := &memContacts{}
	svc := application.NewContactService(store, nil, nil, nil, "", "")
	h := NewContactHandler(svc, nil, testConfig())

	r := gin.New()
	r.POST("/api/contact", h.Submit)
	r.GET("/api/admin/messages", h.List)
	r.GET("/api/admin/stats", h.Stats)
	r.PATCH("/api/admin/messages/:id/status", h.UpdateStatus)
	r.DELETE("/api/admin/messages/:id", h.Delete)
	return r, store
}

func newPortfolioRouter() (*gin.Engine, *memPortfolio) {
	store := &memPortfolio{}
	svc := application.NewPortfolioService(store, nil)
	h := NewPortfolioHandler(svc, nil, testConfig())

	r := gin.New()
	r.GET("/api/portfolio", h.ListPublic)
	r.GET("/api/admin/portfolio", h.ListAll)
	r.POST("/api/admin/portfolio", h.Create)
	r.PUT("/api/admin/portfolio/:id", h.Update)
	r.DELETE("/api/admin/portfolio/:id", h.Delete)
	return r, store
}

func newServiceRouter() (*gin.Engine, *memServices) {
	store := &memServices{}
	svc := application.NewCatalogService(store, nil)
	h := NewServiceHandler(svc, nil, testConfig())

	r := gin.New()
	r.GET("/api/services", h.ListPublic)
	r.POST("/api/admin/services", h.Create)
	r.PUT("/api/admin/services/:id", h.Update)
	r.DELETE("/api/admin/services/:id", h.Delete)
	return r, store
}
