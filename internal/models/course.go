package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lib/pq"
)

type SkillLevel string

const (
	SkillBeginner     SkillLevel = "Beginner"
	SkillIntermediate SkillLevel = "Intermediate"
	SkillAdvanced     SkillLevel = "Advanced"
)

var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

type Course struct {
	CourseID          string         `json:"_id" db:"id"`
	CourseName        string         `json:"courseName" db:"course_name" validate:"required"`
	Timetable         string         `json:"timetable" db:"timetable"`
	ClassDays         pq.StringArray `json:"classDays" db:"class_days" validate:"dive,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	SkillLevel        SkillLevel     `json:"skillLevel" db:"skill_level" validate:"oneof=Beginner Intermediate Advanced"`
	LanguageOrProgram string         `json:"languageOrProgram" db:"language_or_program" validate:"required"`
	Description       string         `json:"description" db:"description" validate:"required"`
	WhatWillILearn    string         `json:"whatWillILearn" db:"what_will_i_learn"`
	Lessons           LessonCount    `json:"lessons" db:"lessons" validate:"gte=0"`
	Image             *string        `json:"image" db:"image"`
	CreatedAt         time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time      `json:"updatedAt" db:"updated_at"`
}

// LessonCount is a lesson total that also accepts the numeric strings
// HTML number inputs submit. An empty string is zero.
type LessonCount int

func (l *LessonCount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*l = 0
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*l = 0
			return nil
		}
		data = []byte(s)
	}

	n, err := strconv.Atoi(string(data))
	if err != nil {
		return fmt.Errorf("lessons must be an integer: %q", data)
	}
	*l = LessonCount(n)
	return nil
}
