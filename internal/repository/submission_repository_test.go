package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"instituteCMS/internal/models"
)

func TestContactRepository(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewContactRepository(db)
	ctx := context.Background()

	t.Run("create", func(t *testing.T) {
		contact := &models.Contact{Name: "A", Phone: "1", Email: "a@b.c", Course: "X", Message: "hi"}

		mock.ExpectExec(`INSERT INTO contacts`).
			WithArgs(sqlmock.AnyArg(), "A", "1", "a@b.c", "X", "hi", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))

		require.NoError(t, repo.Create(ctx, contact))
		assert.True(t, models.IsObjectID(contact.ContactID))
		assert.False(t, contact.CreatedAt.IsZero())
	})

	t.Run("create fails", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO contacts`).WillReturnError(errors.New("disk full"))

		err := repo.Create(ctx, &models.Contact{})
		assert.ErrorContains(t, err, "error saving contact")
	})

	t.Run("list newest first", func(t *testing.T) {
		older := time.Now().Add(-time.Hour)
		newer := time.Now()
		rows := sqlmock.NewRows([]string{"id", "name", "phone", "email", "course", "message", "created_at"}).
			AddRow(models.NewID(), "B", "2", "b@b.c", "Y", "second", newer).
			AddRow(models.NewID(), "A", "1", "a@b.c", "X", "first", older)

		mock.ExpectQuery(`SELECT \* FROM contacts ORDER BY created_at DESC`).WillReturnRows(rows)

		contacts, err := repo.List(ctx)

		require.NoError(t, err)
		require.Len(t, contacts, 2)
		assert.Equal(t, "second", contacts[0].Message)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInquiryRepository(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewInquiryRepository(db)
	ctx := context.Background()

	t.Run("create accepts empty fields", func(t *testing.T) {
		inquiry := &models.Inquiry{Name: "A", LearningMode: "Online"}

		mock.ExpectExec(`INSERT INTO inquiries`).
			WithArgs(sqlmock.AnyArg(), "A", "", "", "", "", "", "", "Online", "", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))

		require.NoError(t, repo.Create(ctx, inquiry))
		assert.True(t, models.IsObjectID(inquiry.InquiryID))
	})

	t.Run("list empty", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM inquiries ORDER BY created_at DESC`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		inquiries, err := repo.List(ctx)

		require.NoError(t, err)
		assert.NotNil(t, inquiries)
		assert.Empty(t, inquiries)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTablesRepository_CountCollections(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewTablesRepository(db)

	rows := sqlmock.NewRows([]string{"blogs", "courses", "contacts", "inquiries", "admins"}).
		AddRow(4, 2, 7, 1, 1)
	mock.ExpectQuery(`SELECT\s+\(SELECT COUNT\(\*\) FROM blogs\)`).WillReturnRows(rows)

	stats, err := repo.CountCollections(context.Background())

	require.NoError(t, err)
	assert.Equal(t, &models.CollectionStats{Blogs: 4, Courses: 2, Contacts: 7, Inquiries: 1, Admins: 1}, stats)
	assert.NoError(t, mock.ExpectationsWereMet())
}
