package router

import (
	app "github.com/souravverma/portfolio-backend/internal/application"
	"github.com/souravverma/portfolio-backend/internal/container"
	repo "github.com/souravverma/portfolio-backend/internal/domain/repository"
	pginfra "github.com/souravverma/portfolio-backend/internal/infrastructure/postgres"
	handlers "github.com/souravverma/portfolio-backend/internal/interface/http"
	"github.com/souravverma/portfolio-backend/internal/router/modules"
)

type deps struct {
	Admins    repo.AdminRepository
	Contacts  repo.ContactRepository
	Portfolio repo.PortfolioRepository
	Services  repo.ServiceRepository
	Auth      *app.AuthService
	Contact   *app.ContactService
	Showcase  *app.PortfolioService
	Catalog   *app.CatalogService
}

func buildDeps() deps {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	d := deps{
		Admins:    pginfra.NewAdminRepository(pool),
		Contacts:  pginfra.NewContactRepository(pool),
		Portfolio: pginfra.NewPortfolioRepository(pool),
		Services:  pginfra.NewServiceRepository(pool),
	}
	d.Auth = app.NewAuthService(d.Admins, container.GetJWT(), logger)
	d.Contact = app.NewContactService(
		d.Contacts,
		logger,
		container.GetRabbitPub(),
		container.GetES(),
		cfg.ESContactsIndex,
		cfg.NotifyEmail,
	)
	d.Showcase = app.NewPortfolioService(d.Portfolio, logger)
	d.Catalog = app.NewCatalogService(d.Services, logger)
	return d
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	jwt := container.GetJWT()
	d := buildDeps()

	health := handlers.NewHealthHandler(container.GetPGPool(), cfg)
	auth := handlers.NewAuthHandler(d.Auth, logger)
	contact := handlers.NewContactHandler(d.Contact, logger, cfg)
	portfolio := handlers.NewPortfolioHandler(d.Showcase, logger, cfg)
	upload := handlers.NewUploadHandler(container.GetGCS(), cfg, logger)
	service := handlers.NewServiceHandler(d.Catalog, logger, cfg)

	r.Add(modules.NewHealth(health))
	r.Add(modules.NewAuth(auth, d.Admins, jwt))
	r.Add(modules.NewContact(contact, d.Admins, jwt))
	r.Add(modules.NewPortfolio(portfolio, upload, d.Admins, jwt))
	r.Add(modules.NewService(service, d.Admins, jwt))
}
