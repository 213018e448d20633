package handlers

import (
	"context"
	"log/slog"

	"instituteCMS/internal/config"
	"instituteCMS/internal/service"
)

// HealthChecker reports whether the persistent store is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

type Handlers struct {
	BlogService    service.BlogService
	CourseService  service.CourseService
	ContactService service.ContactService
	InquiryService service.InquiryService
	AuthService    service.AuthService
	TablesService  service.TablesService
	DB             HealthChecker
	Cfg            *config.Config
	Logger         *slog.Logger
}

func NewHandlers(services *service.Service, db HealthChecker, cfg *config.Config, logger *slog.Logger) *Handlers {
	return &Handlers{
		BlogService:    services.Blog,
		CourseService:  services.Course,
		ContactService: services.Contact,
		InquiryService: services.Inquiry,
		AuthService:    services.Auth,
		TablesService:  services.Tables,
		DB:             db,
		Cfg:            cfg,
		Logger:         logger,
	}
}
