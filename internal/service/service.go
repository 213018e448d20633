package service

import (
	"log/slog"

	"instituteCMS/internal/config"
	"instituteCMS/internal/repository"
	"instituteCMS/internal/storage"
)

type Service struct {
	Blog    BlogService
	Course  CourseService
	Contact ContactService
	Inquiry InquiryService
	Auth    AuthService
	Tables  TablesService
}

func NewService(rep *repository.Repository, cfg *config.Config, media storage.MediaDelegate, logger *slog.Logger) *Service {
	return &Service{
		Blog:    NewBlogService(rep.Blog, media, logger),
		Course:  NewCourseService(rep.Course, media, logger),
		Contact: NewContactService(rep.Contact),
		Inquiry: NewInquiryService(rep.Inquiry),
		Auth:    NewAuthService(rep.Admin, cfg),
		Tables:  NewTablesService(rep.Tables),
	}
}
