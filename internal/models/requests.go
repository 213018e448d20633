package models

// CreateBlogRequest carries image payloads (data URL, base64 or remote URL)
// rather than stored URLs.
type CreateBlogRequest struct {
	Title       string   `json:"title"`
	SubTitle    string   `json:"subTitle"`
	Content     string   `json:"content"`
	TitleImage  string   `json:"titleImage,omitempty"`
	SecondImage string   `json:"secondImage,omitempty"`
	Tags        []string `json:"tags"`
	Category    string   `json:"category"`
	Author      string   `json:"author"`
	Slug        string   `json:"slug,omitempty"`
}

// UpdateBlogRequest leaves a field untouched when it is nil.
type UpdateBlogRequest struct {
	Title       *string   `json:"title,omitempty"`
	SubTitle    *string   `json:"subTitle,omitempty"`
	Content     *string   `json:"content,omitempty"`
	TitleImage  *string   `json:"titleImage,omitempty"`
	SecondImage *string   `json:"secondImage,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Slug        *string   `json:"slug,omitempty"`
}

type CreateCourseRequest struct {
	CourseName        string      `json:"courseName"`
	Timetable         string      `json:"timetable"`
	ClassDays         []string    `json:"classDays"`
	SkillLevel        SkillLevel  `json:"skillLevel"`
	LanguageOrProgram string      `json:"languageOrProgram"`
	Description       string      `json:"description"`
	WhatWillILearn    string      `json:"whatWillILearn"`
	Lessons           LessonCount `json:"lessons"`
	Image             string      `json:"image,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}
