package mysql_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"

	"github.com/Guyuepp/blog-discussion/domain"
	repo "github.com/Guyuepp/blog-discussion/internal/repository/mysql"
)

func TestBlogGetByID(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT \\* FROM `blog` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "author_id", "comments_enabled", "created_at"}).
			AddRow("b-1", "Rates", "u-1", false, time.Now()))

	b, err := repo.NewBlogRepository(db).GetByID(context.TODO(), "b-1")
	require.NoError(t, err)
	assert.Equal(t, "Rates", b.Title)
	assert.False(t, b.CommentsEnabled)

	mock.ExpectQuery("SELECT \\* FROM `blog` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	_, err = repo.NewBlogRepository(db).GetByID(context.TODO(), "b-2")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBlogFetchIDs(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT `id` FROM `blog` WHERE id > \\? ORDER BY id").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("b-1").AddRow("b-2"))

	ids, err := repo.NewBlogRepository(db).FetchIDs(context.TODO(), "", 100)
	require.NoError(t, err)
	assert.Equal(t, []string{"b-1", "b-2"}, ids)
}
