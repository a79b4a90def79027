package repository

import "github.com/souravverma/portfolio-backend/internal/domain/entity"

// ContactFilter narrows the admin message listing. Status and Service match
// exactly; the zero value or "all" disables the filter. Search is a
// case-insensitive substring match against name, email and message.
type ContactFilter struct {
	Status  string
	Service string
	Search  string
	Page    int
	Limit   int
}

// ServiceCount is one bucket of the per-service message breakdown.
type ServiceCount struct {
	Service string `json:"service"`
	Count   int64  `json:"count"`
}

// ContactStats aggregates the contact collection for the dashboard.
type ContactStats struct {
	TotalMessages     int64          `json:"totalMessages"`
	NewMessages       int64          `json:"newMessages"`
	ReadMessages      int64          `json:"readMessages"`
	RepliedMessages   int64          `json:"repliedMessages"`
	RecentMessages    int64          `json:"recentMessages"`
	MessagesByService []ServiceCount `json:"messagesByService"`
}

// ContactRepository defines the interface for contact message persistence.
type ContactRepository interface {
	Create(m *entity.Contact) error
	GetByID(id string) (*entity.Contact, error)
	// List returns the filtered page, newest first, plus the total match count.
	List(f ContactFilter) ([]*entity.Contact, int64, error)
	UpdateStatus(id string, status entity.ContactStatus) (*entity.Contact, error)
	Delete(id string) error
	Stats() (*ContactStats, error)
}
