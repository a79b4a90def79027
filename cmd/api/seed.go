package main

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/souravverma/portfolio-backend/config"
	"github.com/souravverma/portfolio-backend/internal/domain/entity"
	pginfra "github.com/souravverma/portfolio-backend/internal/infrastructure/postgres"
	"github.com/souravverma/portfolio-backend/pkg/helpers"
)

// seedWithRetry keeps trying to seed defaults until the database becomes
// reachable, then stops. Safe to run on every boot; existing data is left
// untouched.
func seedWithRetry(ctx context.Context, pool *pgxpool.Pool, cfg *config.Config, logger *logrus.Logger) {
	for {
		if err := pginfra.Ping(ctx, pool); err == nil {
			break
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(5 * time.Second):
		}
	}
	if err := seedDefaults(pool, cfg, logger); err != nil {
		logger.WithError(err).Error("seeding defaults failed")
		return
	}
	logger.Info("default data ready")
}

func seedDefaults(pool *pgxpool.Pool, cfg *config.Config, logger *logrus.Logger) error {
	if err := seedAdmin(pool, cfg, logger); err != nil {
		return err
	}
	if err := seedServices(pool, logger); err != nil {
		return err
	}
	return seedPortfolio(pool, logger)
}

func seedAdmin(pool *pgxpool.Pool, cfg *config.Config, logger *logrus.Logger) error {
	admins := pginfra.NewAdminRepository(pool)
	if _, err := admins.GetByUsername(cfg.AdminUsername); err == nil {
		return nil
	}
	hash, err := helpers.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}
	admin := &entity.Admin{
		Username: cfg.AdminUsername,
		Password: hash,
		Email:    cfg.AdminEmail,
		Role:     entity.RoleSuperAdmin,
	}
	if err := admins.Create(admin); err != nil {
		return err
	}
	logger.WithField("username", cfg.AdminUsername).Info("default admin created")
	return nil
}

func seedServices(pool *pgxpool.Pool, logger *logrus.Logger) error {
	services := pginfra.NewServiceRepository(pool)
	n, err := services.Count()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	defaults := []*entity.Service{
		{
			Name:        "Logo Design",
			Description: "Create memorable and impactful logos that represent your brand identity perfectly",
			PriceINR:    4150,
			Features:    []string{"Custom Logo Design", "Multiple Concepts", "Vector Files", "Brand Guidelines"},
			IsActive:    true,
		},
		{
			Name:        "Branding",
			Description: "Complete brand identity solutions including logo, colors, typography, and guidelines",
			PriceINR:    16600,
			Features:    []string{"Logo Design", "Color Palette", "Typography", "Brand Guidelines", "Business Cards"},
			IsActive:    true,
		},
		{
			Name:        "Social Media Creatives",
			Description: "Eye-catching social media graphics that boost engagement and brand awareness",
			PriceINR:    2490,
			Features:    []string{"Instagram Posts", "Story Templates", "Facebook Covers", "LinkedIn Graphics"},
			IsActive:    true,
		},
		{
			Name:        "Posters & Ads",
			Description: "Compelling poster designs and advertisements that capture attention and drive action",
			PriceINR:    3320,
			Features:    []string{"Event Posters", "Print Ads", "Digital Banners", "Promotional Materials"},
			IsActive:    true,
		},
	}
	for _, s := range defaults {
		if err := services.Create(s); err != nil {
			return err
		}
	}
	logger.Info("default services created")
	return nil
}

func seedPortfolio(pool *pgxpool.Pool, logger *logrus.Logger) error {
	items := pginfra.NewPortfolioRepository(pool)
	n, err := items.Count()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	defaults := []*entity.PortfolioItem{
		{
			Title:       "Modern Tech Logo",
			Category:    entity.CategoryLogoDesign,
			Description: "Clean and modern logo design for a tech startup",
			ImageURL:    "https://via.placeholder.com/400x300/6366f1/ffffff?text=Tech+Logo",
			Tags:        []string{"Logo", "Branding", "Tech"},
			IsActive:    true,
		},
		{
			Title:       "Restaurant Branding",
			Category:    entity.CategoryBranding,
			Description: "Complete brand identity for a premium restaurant",
			ImageURL:    "https://via.placeholder.com/400x300/8b5cf6/ffffff?text=Restaurant+Brand",
			Tags:        []string{"Branding", "Identity", "Food"},
			IsActive:    true,
		},
		{
			Title:       "Social Media Campaign",
			Category:    entity.CategorySocialMedia,
			Description: "Engaging social media graphics for fashion brand",
			ImageURL:    "https://via.placeholder.com/400x300/06b6d4/ffffff?text=Social+Campaign",
			Tags:        []string{"Social Media", "Fashion", "Campaign"},
			IsActive:    true,
		},
		{
			Title:       "Fitness App Logo",
			Category:    entity.CategoryLogoDesign,
			Description: "Dynamic logo design for fitness application",
			ImageURL:    "https://via.placeholder.com/400x300/f59e0b/ffffff?text=Fitness+Logo",
			Tags:        []string{"Logo", "App", "Fitness"},
			IsActive:    true,
		},
	}
	for _, p := range defaults {
		if err := items.Create(p); err != nil {
			return err
		}
	}
	logger.Info("default portfolio items created")
	return nil
}
