package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"instituteCMS/internal/models"
)

type courseRepository struct {
	db *sqlx.DB
}

func NewCourseRepository(db *sqlx.DB) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses
		(id, course_name, timetable, class_days, skill_level, language_or_program,
		 description, what_will_i_learn, lessons, image, created_at, updated_at)
		VALUES
		(:id, :course_name, :timetable, :class_days, :skill_level, :language_or_program,
		 :description, :what_will_i_learn, :lessons, :image, :created_at, :updated_at)
	`

	if course.CourseID == "" {
		course.CourseID = models.NewID()
	}

	now := time.Now().UTC()
	course.CreatedAt = now
	course.UpdatedAt = now

	if _, err := r.db.NamedExecContext(ctx, query, course); err != nil {
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

func (r *courseRepository) List(ctx context.Context) ([]models.Course, error) {
	query := `SELECT * FROM courses ORDER BY created_at DESC`

	courses := []models.Course{}
	if err := r.db.SelectContext(ctx, &courses, query); err != nil {
		return nil, fmt.Errorf("error fetching courses: %w", err)
	}

	return courses, nil
}

func (r *courseRepository) GetByID(ctx context.Context, courseID string) (*models.Course, error) {
	query := `SELECT * FROM courses WHERE id = $1`
	courseID = models.NormalizeID(courseID)

	var course models.Course
	err := r.db.GetContext(ctx, &course, query, courseID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("course %s: %w", courseID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("error fetching course: %w", err)
	}

	return &course, nil
}
