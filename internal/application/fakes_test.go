package application

import (
	"fmt"
	"strings"
	"time"

	repo "github.com/souravverma/portfolio-backend/internal/domain/repository"

	"github.com/souravverma/portfolio-backend/internal/domain/entity"
)

// In-memory repository fakes shared by the service tests.

type fakeAdminRepo struct {
	admins map[string]*entity.Admin // keyed by id
}

func newFakeAdminRepo(admins ...*entity.Admin) *fakeAdminRepo {
	f := &fakeAdminRepo{admins: map[string]*entity.Admin{}}
	for _, a := range admins {
		f.admins[a.ID] = a
	}
	return f
}

func (f *fakeAdminRepo) Create(a *entity.Admin) error {
	for _, ex := range f.admins {
		if ex.Username == a.Username || ex.Email == a.Email {
			return repo.ErrConflict
		}
	}
	if a.ID == "" {
		a.ID = fmt.Sprintf("admin-%d", len(f.admins)+1)
	}
	a.CreatedAt = time.Now()
	f.admins[a.ID] = a
	return nil
}

func (f *fakeAdminRepo) GetByID(id string) (*entity.Admin, error) {
	a, ok := f.admins[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return a, nil
}

func (f *fakeAdminRepo) GetByUsername(username string) (*entity.Admin, error) {
	for _, a := range f.admins {
		if a.Username == username {
			return a, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeAdminRepo) TouchLastLogin(id string, at time.Time) error {
	a, ok := f.admins[id]
	if !ok {
		return repo.ErrNotFound
	}
	a.LastLogin = &at
	return nil
}

type fakeContactRepo struct {
	seq      int
	contacts []*entity.Contact // newest first
	failWith error
}

func (f *fakeContactRepo) Create(m *entity.Contact) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.seq++
	m.ID = fmt.Sprintf("msg-%d", f.seq)
	m.Status = entity.StatusNew
	m.CreatedAt = time.Now()
	f.contacts = append([]*entity.Contact{m}, f.contacts...)
	return nil
}

func (f *fakeContactRepo) GetByID(id string) (*entity.Contact, error) {
	for _, m := range f.contacts {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeContactRepo) List(fl repo.ContactFilter) ([]*entity.Contact, int64, error) {
	var matched []*entity.Contact
	for _, m := range f.contacts {
		if fl.Status != "" && fl.Status != "all" && string(m.Status) != fl.Status {
			continue
		}
		if fl.Service != "" && fl.Service != "all" && string(m.Service) != fl.Service {
			continue
		}
		if fl.Search != "" {
			s := strings.ToLower(fl.Search)
			if !strings.Contains(strings.ToLower(m.Name), s) &&
				!strings.Contains(strings.ToLower(m.Email), s) &&
				!strings.Contains(strings.ToLower(m.Message), s) {
				continue
			}
		}
		matched = append(matched, m)
	}
	total := int64(len(matched))
	start := (fl.Page - 1) * fl.Limit
	if start >= len(matched) {
		return nil, total, nil
	}
	end := start + fl.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (f *fakeContactRepo) UpdateStatus(id string, status entity.ContactStatus) (*entity.Contact, error) {
	m, err := f.GetByID(id)
	if err != nil {
		return nil, err
	}
	m.Status = status
	return m, nil
}

func (f *fakeContactRepo) Delete(id string) error {
	for i, m := range f.contacts {
		if m.ID == id {
			f.contacts = append(f.contacts[:i], f.contacts[i+1:]...)
			return nil
		}
	}
	return repo.ErrNotFound
}

func (f *fakeContactRepo) Stats() (*repo.ContactStats, error) {
	st := &repo.ContactStats{}
	byService := map[string]int64{}
	for _, m := range f.contacts {
		st.TotalMessages++
		switch m.Status {
		case entity.StatusNew:
			st.NewMessages++
		case entity.StatusRead:
			st.ReadMessages++
		case entity.StatusReplied:
			st.RepliedMessages++
		}
		if time.Since(m.CreatedAt) < 7*24*time.Hour {
			st.RecentMessages++
		}
		byService[string(m.Service)]++
	}
	for svc, n := range byService {
		st.MessagesByService = append(st.MessagesByService, repo.ServiceCount{Service: svc, Count: n})
	}
	return st, nil
}

type fakePortfolioRepo struct {
	seq   int
	items []*entity.PortfolioItem
}

func (f *fakePortfolioRepo) Create(p *entity.PortfolioItem) error {
	f.seq++
	p.ID = fmt.Sprintf("item-%d", f.seq)
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	f.items = append([]*entity.PortfolioItem{p}, f.items...)
	return nil
}

func (f *fakePortfolioRepo) List(activeOnly bool) ([]*entity.PortfolioItem, error) {
	var out []*entity.PortfolioItem
	for _, p := range f.items {
		if activeOnly && !p.IsActive {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePortfolioRepo) Update(p *entity.PortfolioItem) error {
	for i, ex := range f.items {
		if ex.ID == p.ID {
			p.CreatedAt = ex.CreatedAt
			p.UpdatedAt = time.Now()
			f.items[i] = p
			return nil
		}
	}
	return repo.ErrNotFound
}

func (f *fakePortfolioRepo) Delete(id string) error {
	for i, p := range f.items {
		if p.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return repo.ErrNotFound
}

func (f *fakePortfolioRepo) Count() (int64, error) { return int64(len(f.items)), nil }

type fakeServiceRepo struct {
	seq   int
	items []*entity.Service
}

func (f *fakeServiceRepo) Create(s *entity.Service) error {
	f.seq++
	s.ID = fmt.Sprintf("svc-%d", f.seq)
	s.CreatedAt = time.Now()
	s.UpdatedAt = s.CreatedAt
	f.items = append([]*entity.Service{s}, f.items...)
	return nil
}

func (f *fakeServiceRepo) List(activeOnly bool) ([]*entity.Service, error) {
	var out []*entity.Service
	for _, s := range f.items {
		if activeOnly && !s.IsActive {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeServiceRepo) Update(s *entity.Service) error {
	for i, ex := range f.items {
		if ex.ID == s.ID {
			s.CreatedAt = ex.CreatedAt
			s.UpdatedAt = time.Now()
			f.items[i] = s
			return nil
		}
	}
	return repo.ErrNotFound
}

func (f *fakeServiceRepo) Delete(id string) error {
	for i, s := range f.items {
		if s.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return repo.ErrNotFound
}

func (f *fakeServiceRepo) Count() (int64, error) { return int64(len(f.items)), nil }
