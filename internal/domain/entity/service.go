package entity

import "time"

// Service is a purchasable offering with INR pricing.
// Shares the soft-visibility lifecycle of PortfolioItem.
type Service struct {
	ID          string
	Name        string
	Description string
	PriceINR    float64
	Features    []string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
