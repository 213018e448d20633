package models

import "time"

type Contact struct {
	ContactID string    `json:"_id" db:"id"`
	Name      string    `json:"name" db:"name" validate:"required"`
	Phone     string    `json:"phone" db:"phone" validate:"required"`
	Email     string    `json:"email" db:"email" validate:"required"`
	Course    string    `json:"course" db:"course" validate:"required"`
	Message   string    `json:"message" db:"message" validate:"required"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Inquiry fields are only checked by the form; the store accepts them as sent.
type Inquiry struct {
	InquiryID         string    `json:"_id" db:"id"`
	Name              string    `json:"name" db:"name"`
	Phone             string    `json:"phone" db:"phone"`
	Email             string    `json:"email" db:"email"`
	Institution       string    `json:"institution" db:"institution"`
	AcademicStatus    string    `json:"academicStatus" db:"academic_status"`
	InterestedCourse  string    `json:"interestedCourse" db:"interested_course"`
	PreferredSchedule string    `json:"preferredSchedule" db:"preferred_schedule"`
	LearningMode      string    `json:"learningMode" db:"learning_mode"`
	Message           string    `json:"message" db:"message"`
	CreatedAt         time.Time `json:"createdAt" db:"created_at"`
}
