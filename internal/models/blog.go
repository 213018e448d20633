package models

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
)

type Blog struct {
	BlogID      string         `json:"_id" db:"id"`
	Title       string         `json:"title" db:"title" validate:"required"`
	SubTitle    string         `json:"subTitle" db:"sub_title"`
	Content     string         `json:"content" db:"content" validate:"required"`
	TitleImage  *string        `json:"titleImage" db:"title_image"`
	SecondImage *string        `json:"secondImage" db:"second_image"`
	Tags        pq.StringArray `json:"tags" db:"tags"`
	Category    string         `json:"category" db:"category"`
	AuthorID    string         `json:"-" db:"author_id" validate:"required"`
	AuthorEmail sql.NullString `json:"-" db:"author_email"`
	Author      *BlogAuthor    `json:"author" db:"-"`
	Slug        *string        `json:"slug,omitempty" db:"slug"`
	Views       int            `json:"views" db:"views"`
	CreatedAt   time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time      `json:"updatedAt" db:"updated_at"`
}

// BlogAuthor is the display expansion of the author reference.
type BlogAuthor struct {
	AdminID string `json:"_id"`
	Email   string `json:"email,omitempty"`
}

// ExpandAuthor fills Author from the joined columns.
func (b *Blog) ExpandAuthor() {
	if b.AuthorID == "" {
		b.Author = nil
		return
	}
	b.Author = &BlogAuthor{AdminID: b.AuthorID, Email: b.AuthorEmail.String}
}

// Images returns the stored image URLs, title image first.
func (b *Blog) Images() []string {
	var urls []string
	for _, u := range []*string{b.TitleImage, b.SecondImage} {
		if u != nil && *u != "" {
			urls = append(urls, *u)
		}
	}
	return urls
}

const DefaultBlogCategory = "General"

type LookupKind int

const (
	ByID LookupKind = iota
	BySlug
)

func (k LookupKind) String() string {
	if k == BySlug {
		return "slug"
	}
	return "id"
}

// BlogRef is a blog identifier tagged with how it must be looked up.
type BlogRef struct {
	Kind  LookupKind
	Value string
}

func BlogRefByID(id string) BlogRef {
	return BlogRef{Kind: ByID, Value: NormalizeID(id)}
}

func BlogRefBySlug(slug string) BlogRef {
	return BlogRef{Kind: BySlug, Value: slug}
}

// ParseBlogRef tags a path identifier by its shape: exactly 24 hex
// characters (either case) is an id, anything else is a slug.
func ParseBlogRef(s string) BlogRef {
	if IsObjectID(s) {
		return BlogRefByID(s)
	}
	return BlogRefBySlug(s)
}
