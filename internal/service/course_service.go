package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/lib/pq"

	"instituteCMS/internal/models"
	"instituteCMS/internal/repository"
	"instituteCMS/internal/storage"
)

const courseImageNamespace = "courses"

type CourseService interface {
	CreateCourse(ctx context.Context, req models.CreateCourseRequest) (*models.Course, error)
	GetCourses(ctx context.Context) ([]models.Course, error)
	GetCourse(ctx context.Context, courseID string) (*models.Course, error)
}

type courseService struct {
	courseRepo repository.CourseRepository
	media      storage.MediaDelegate
	logger     *slog.Logger
}

func NewCourseService(courseRepo repository.CourseRepository, media storage.MediaDelegate, logger *slog.Logger) CourseService {
	return &courseService{
		courseRepo: courseRepo,
		media:      media,
		logger:     logger,
	}
}

func (s *courseService) CreateCourse(ctx context.Context, req models.CreateCourseRequest) (*models.Course, error) {
	course := &models.Course{
		CourseName:        strings.TrimSpace(req.CourseName),
		Timetable:         req.Timetable,
		ClassDays:         pq.StringArray{},
		SkillLevel:        req.SkillLevel,
		LanguageOrProgram: strings.TrimSpace(req.LanguageOrProgram),
		Description:       req.Description,
		WhatWillILearn:    req.WhatWillILearn,
		Lessons:           req.Lessons,
	}

	if course.SkillLevel == "" {
		course.SkillLevel = models.SkillBeginner
	}
	if req.ClassDays != nil {
		course.ClassDays = req.ClassDays
	}

	if err := validateStruct(course); err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Image) != "" {
		url, err := s.media.Upload(ctx, courseImageNamespace, req.Image)
		if err != nil {
			return nil, err
		}
		course.Image = &url
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		if course.Image != nil {
			deleteImages(ctx, s.media, s.logger, courseImageNamespace, []string{*course.Image})
		}
		return nil, err
	}

	return course, nil
}

func (s *courseService) GetCourses(ctx context.Context) ([]models.Course, error) {
	return s.courseRepo.List(ctx)
}

func (s *courseService) GetCourse(ctx context.Context, courseID string) (*models.Course, error) {
	return s.courseRepo.GetByID(ctx, courseID)
}
