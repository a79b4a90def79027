package entity

import "time"

// PortfolioCategory is the closed set of portfolio item categories.
// It matches the contact services without the catch-all "Other".
type PortfolioCategory string

const (
	CategoryLogoDesign  PortfolioCategory = "Logo Design"
	CategoryBranding    PortfolioCategory = "Branding"
	CategorySocialMedia PortfolioCategory = "Social Media Creatives"
	CategoryPostersAds  PortfolioCategory = "Posters & Ads"
)

func (c PortfolioCategory) Valid() bool {
	switch c {
	case CategoryLogoDesign, CategoryBranding, CategorySocialMedia, CategoryPostersAds:
		return true
	}
	return false
}

// PortfolioItem is a showcased piece of work. IsActive is a soft-visibility
// toggle; the public listing only shows active items.
type PortfolioItem struct {
	ID          string
	Title       string
	Description string
	Category    PortfolioCategory
	ImageURL    string
	Tags        []string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
