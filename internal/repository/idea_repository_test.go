package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ideagen/internal/apperrors"
	"ideagen/internal/models"
)

func ideaRows(ideas ...*models.Idea) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"idea_id", "user_id", "title", "description", "content_type",
		"keywords", "industry", "saved", "created_at",
	})
	for _, idea := range ideas {
		rows.AddRow(
			idea.IdeaID, idea.UserID, idea.Title, idea.Description, idea.ContentType,
			"{}", idea.Industry, idea.Saved, idea.CreatedAt,
		)
	}
	return rows
}

func TestIdeaRepository_Create(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewIdeaRepository(sqlxDB)

	ctx := context.Background()

	idea := &models.Idea{
		UserID:      "user-1",
		Title:       "A",
		Description: "B",
		ContentType: "blog",
		Keywords:    pq.StringArray{"go"},
	}

	mock.ExpectExec(`INSERT INTO ideas`).
		WithArgs(
			sqlmock.AnyArg(), // idea_id generated inside the repository
			"user-1",
			"A",
			"B",
			"blog",
			sqlmock.AnyArg(),
			"",
			false,
			sqlmock.AnyArg(), // created_at
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Create(ctx, idea)

	require.NoError(t, err)
	assert.NotEmpty(t, idea.IdeaID)
	assert.False(t, idea.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdeaRepository_GetByID(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewIdeaRepository(sqlxDB)

	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		want := &models.Idea{
			IdeaID:      "idea-1",
			UserID:      "user-1",
			Title:       "A",
			Description: "B",
			ContentType: "blog",
			CreatedAt:   time.Now(),
		}

		mock.ExpectQuery(`SELECT \* FROM ideas WHERE idea_id = \$1`).
			WithArgs("idea-1").
			WillReturnRows(ideaRows(want))

		idea, err := repo.GetByID(ctx, "idea-1")

		require.NoError(t, err)
		assert.Equal(t, "idea-1", idea.IdeaID)
		assert.Equal(t, "user-1", idea.UserID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM ideas WHERE idea_id = \$1`).
			WithArgs("idea-2").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByID(ctx, "idea-2")

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("malformed id is a missing row", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM ideas WHERE idea_id = \$1`).
			WithArgs("not-a-uuid").
			WillReturnError(&pq.Error{Code: "22P02"})

		_, err := repo.GetByID(ctx, "not-a-uuid")

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestIdeaRepository_GetByUserID(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewIdeaRepository(sqlxDB)

	ctx := context.Background()

	first := &models.Idea{IdeaID: "idea-2", UserID: "user-1", Title: "newer", ContentType: "blog", CreatedAt: time.Now()}
	second := &models.Idea{IdeaID: "idea-1", UserID: "user-1", Title: "older", ContentType: "blog", CreatedAt: time.Now().Add(-time.Hour)}

	mock.ExpectQuery(`SELECT \* FROM ideas WHERE user_id = \$1 ORDER BY created_at DESC`).
		WithArgs("user-1").
		WillReturnRows(ideaRows(first, second))

	ideas, err := repo.GetByUserID(ctx, "user-1")

	require.NoError(t, err)
	require.Len(t, ideas, 2)
	assert.Equal(t, "idea-2", ideas[0].IdeaID)
	assert.Equal(t, "idea-1", ideas[1].IdeaID)
}

func TestIdeaRepository_Update(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewIdeaRepository(sqlxDB)

	ctx := context.Background()

	idea := &models.Idea{
		IdeaID:      "idea-1",
		UserID:      "user-1",
		Title:       "X",
		Description: "B",
		ContentType: "blog",
		Keywords:    pq.StringArray{},
	}

	t.Run("updates existing idea", func(t *testing.T) {
		mock.ExpectExec(`UPDATE ideas`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Update(ctx, idea))
	})

	t.Run("missing idea", func(t *testing.T) {
		mock.ExpectExec(`UPDATE ideas`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Update(ctx, idea), apperrors.ErrNotFound)
	})
}

func TestIdeaRepository_Delete(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewIdeaRepository(sqlxDB)

	ctx := context.Background()

	t.Run("deletes existing idea", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM ideas WHERE idea_id = \$1`).
			WithArgs("idea-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, "idea-1"))
	})

	t.Run("missing idea", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM ideas WHERE idea_id = \$1`).
			WithArgs("idea-2").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(ctx, "idea-2"), apperrors.ErrNotFound)
	})
}
