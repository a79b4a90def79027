package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/souravverma/portfolio-backend/internal/domain/entity"
)

// View helpers shape entities into the camelCase JSON the front end consumes.

func adminView(a *entity.Admin) gin.H {
	var lastLogin any
	if a.LastLogin != nil {
		lastLogin = a.LastLogin.Format(time.RFC3339)
	}
	return gin.H{
		"id":        a.ID,
		"username":  a.Username,
		"email":     a.Email,
		"role":      string(a.Role),
		"lastLogin": lastLogin,
	}
}

func contactView(m *entity.Contact) gin.H {
	return gin.H{
		"id":        m.ID,
		"name":      m.Name,
		"email":     m.Email,
		"phone":     m.Phone,
		"service":   string(m.Service),
		"message":   m.Message,
		"status":    string(m.Status),
		"createdAt": m.CreatedAt.Format(time.RFC3339),
	}
}

func contactViews(items []*entity.Contact) []gin.H {
	out := make([]gin.H, 0, len(items))
	for _, m := range items {
		out = append(out, contactView(m))
	}
	return out
}

func portfolioView(p *entity.PortfolioItem) gin.H {
	return gin.H{
		"id":          p.ID,
		"title":       p.Title,
		"description": p.Description,
		"category":    string(p.Category),
		"imageUrl":    p.ImageURL,
		"tags":        p.Tags,
		"isActive":    p.IsActive,
		"createdAt":   p.CreatedAt.Format(time.RFC3339),
		"updatedAt":   p.UpdatedAt.Format(time.RFC3339),
	}
}

func portfolioViews(items []*entity.PortfolioItem) []gin.H {
	out := make([]gin.H, 0, len(items))
	for _, p := range items {
		out = append(out, portfolioView(p))
	}
	return out
}

func serviceView(s *entity.Service) gin.H {
	return gin.H{
		"id":          s.ID,
		"name":        s.Name,
		"description": s.Description,
		"priceINR":    s.PriceINR,
		"features":    s.Features,
		"isActive":    s.IsActive,
		"createdAt":   s.CreatedAt.Format(time.RFC3339),
		"updatedAt":   s.UpdatedAt.Format(time.RFC3339),
	}
}

func serviceViews(items []*entity.Service) []gin.H {
	out := make([]gin.H, 0, len(items))
	for _, s := range items {
		out = append(out, serviceView(s))
	}
	return out
}
