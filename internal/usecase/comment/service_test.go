package comment_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/blog-discussion/domain"
	"github.com/Guyuepp/blog-discussion/domain/mocks"
	ucase "github.com/Guyuepp/blog-discussion/internal/usecase/comment"
)

type fixture struct {
	comments *mocks.CommentRepository
	blogs    *mocks.BlogRepository
	users    *mocks.UserRepository
	bloom    *mocks.BloomRepository
	likes    *mocks.LikeCache
	worker   *mocks.SyncLikesWorker
}

func newFixture(t *testing.T) *fixture {
	return &fixture{
		comments: mocks.NewCommentRepository(t),
		blogs:    mocks.NewBlogRepository(t),
		users:    mocks.NewUserRepository(t),
		bloom:    mocks.NewBloomRepository(t),
		likes:    mocks.NewLikeCache(t),
		worker:   mocks.NewSyncLikesWorker(t),
	}
}

func (f *fixture) service(policy domain.AuthorPolicy) *ucase.Service {
	return ucase.NewService(f.comments, f.blogs, f.users, f.bloom, f.likes, f.worker, policy)
}

func (f *fixture) blogExists(blog domain.Blog) {
	f.bloom.On("Exists", mock.Anything, blog.ID).Return(true, nil).Once()
	f.blogs.On("GetByID", mock.Anything, blog.ID).Return(blog, nil).Once()
}

var (
	openBlog = domain.Blog{ID: "blog-1", Title: "Rates", CommentsEnabled: true}
	alice    = domain.User{ID: "user-1", Name: "Alice", AvatarURL: "/a.png", Role: domain.RoleUser}
	bob      = domain.User{ID: "user-2", Name: "Bob", AvatarURL: "/b.png", Role: domain.RoleUser}
)

func TestCreate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newFixture(t)
		f.blogExists(openBlog)
		f.users.On("GetByID", mock.Anything, alice.ID).Return(alice, nil).Once()
		f.comments.On("Store", mock.Anything, mock.AnythingOfType("*domain.Comment")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.Comment).ID = "c-1"
			}).Return(nil).Once()

		c, err := f.service(domain.AuthorJoinAtRead).Create(context.TODO(), domain.CreateCommentInput{
			BlogID:   openBlog.ID,
			AuthorID: alice.ID,
			Content:  "  Great post!  ",
		})

		require.NoError(t, err)
		assert.Equal(t, "c-1", c.ID)
		assert.Equal(t, "Great post!", c.Content)
		assert.Equal(t, domain.StatusActive, c.Status)
		assert.Empty(t, c.ParentID)
		assert.NotNil(t, c.Likes)
		assert.Empty(t, c.Likes)
		assert.NotNil(t, c.Attachments)
		require.NotNil(t, c.Author)
		assert.Equal(t, "Alice", c.Author.Name)
		assert.False(t, c.CreatedAt.IsZero())
	})

	t.Run("attachment only", func(t *testing.T) {
		f := newFixture(t)
		f.blogExists(openBlog)
		f.users.On("GetByID", mock.Anything, alice.ID).Return(alice, nil).Once()
		f.comments.On("Store", mock.Anything, mock.AnythingOfType("*domain.Comment")).Return(nil).Once()

		c, err := f.service(domain.AuthorJoinAtRead).Create(context.TODO(), domain.CreateCommentInput{
			BlogID:   openBlog.ID,
			AuthorID: alice.ID,
			Content:  "   ",
			Attachments: []domain.Attachment{
				{URL: "/uploads/x.pdf", Filename: "x.pdf", SizeBytes: 1024, MimeType: "application/pdf"},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, "", c.Content)
		require.Len(t, c.Attachments, 1)
		assert.Equal(t, domain.KindDocument, c.Attachments[0].Kind)
		assert.Equal(t, "x.pdf", c.Attachments[0].OriginalName)
		assert.False(t, c.Attachments[0].UploadedAt.IsZero())
	})

	t.Run("snapshot policy stores the author view", func(t *testing.T) {
		f := newFixture(t)
		f.blogExists(openBlog)
		f.users.On("GetByID", mock.Anything, alice.ID).Return(alice, nil).Once()
		f.comments.On("Store", mock.Anything, mock.MatchedBy(func(c *domain.Comment) bool {
			return c.Author != nil && c.Author.Name == "Alice"
		})).Return(nil).Once()

		_, err := f.service(domain.AuthorSnapshotAtWrite).Create(context.TODO(), domain.CreateCommentInput{
			BlogID: openBlog.ID, AuthorID: alice.ID, Content: "hi",
		})
		require.NoError(t, err)
	})

	t.Run("blank content without attachments", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.service(domain.AuthorJoinAtRead).Create(context.TODO(), domain.CreateCommentInput{
			BlogID: openBlog.ID, AuthorID: alice.ID, Content: " \n\t ",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
		assert.ErrorIs(t, err, domain.ErrEmptyComment)
	})

	t.Run("no author", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.service(domain.AuthorJoinAtRead).Create(context.TODO(), domain.CreateCommentInput{
			BlogID: openBlog.ID, Content: "hi",
		})
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("attachment without url", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.service(domain.AuthorJoinAtRead).Create(context.TODO(), domain.CreateCommentInput{
			BlogID: openBlog.ID, AuthorID: alice.ID,
			Attachments: []domain.Attachment{{Filename: "a.png", MimeType: "image/png"}},
		})
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})

	t.Run("bloom miss confirmed by the store", func(t *testing.T) {
		f := newFixture(t)
		f.bloom.On("Exists", mock.Anything, "nope").Return(false, nil).Once()
		f.blogs.On("GetByID", mock.Anything, "nope").Return(domain.Blog{}, domain.ErrNotFound).Once()

		_, err := f.service(domain.AuthorJoinAtRead).Create(context.TODO(), domain.CreateCommentInput{
			BlogID: "nope", AuthorID: alice.ID, Content: "hi",
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.ErrorIs(t, err, domain.ErrBlogNotFound)
		f.bloom.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})

	t.Run("blog created after the last bloom refresh", func(t *testing.T) {
		f := newFixture(t)
		fresh := domain.Blog{ID: "blog-new", CommentsEnabled: true}
		f.bloom.On("Exists", mock.Anything, fresh.ID).Return(false, nil).Once()
		f.blogs.On("GetByID", mock.Anything, fresh.ID).Return(fresh, nil).Once()
		f.bloom.On("Add", mock.Anything, fresh.ID).Return(nil).Once()
		f.users.On("GetByID", mock.Anything, alice.ID).Return(alice, nil).Once()
		f.comments.On("Store", mock.Anything, mock.AnythingOfType("*domain.Comment")).Return(nil).Once()

		c, err := f.service(domain.AuthorJoinAtRead).Create(context.TODO(), domain.CreateCommentInput{
			BlogID: fresh.ID, AuthorID: alice.ID, Content: "first!",
		})
		require.NoError(t, err)
		assert.Equal(t, fresh.ID, c.BlogID)
	})

	t.Run("blog missing from store", func(t *testing.T) {
		f := newFixture(t)
		f.bloom.On("Exists", mock.Anything, "gone").Return(true, nil).Once()
		f.blogs.On("GetByID", mock.Anything, "gone").Return(domain.Blog{}, domain.ErrNotFound).Once()

		_, err := f.service(domain.AuthorJoinAtRead).Create(context.TODO(), domain.CreateCommentInput{
			BlogID: "gone", AuthorID: alice.ID, Content: "hi",
		})
		assert.ErrorIs(t, err, domain.ErrBlogNotFound)
	})

	t.Run("bloom failure falls through to the store", func(t *testing.T) {
		f := newFixture(t)
		f.bloom.On("Exists", mock.Anything, openBlog.ID).Return(false, errors.New("redis down")).Once()
		f.blogs.On("GetByID", mock.Anything, openBlog.ID).Return(openBlog, nil).Once()
		f.users.On("GetByID", mock.Anything, alice.ID).Return(alice, nil).Once()
		f.comments.On("Store", mock.Anything, mock.AnythingOfType("*domain.Comment")).Return(nil).Once()

		_, err := f.service(domain.AuthorJoinAtRead).Create(context.TODO(), domain.CreateCommentInput{
			BlogID: openBlog.ID, AuthorID: alice.ID, Content: "hi",
		})
		assert.NoError(t, err)
	})

	t.Run("comments disabled", func(t *testing.T) {
		f := newFixture(t)
		closed := domain.Blog{ID: "blog-2", CommentsEnabled: false}
		f.blogExists(closed)

		_, err := f.service(domain.AuthorJoinAtRead).Create(context.TODO(), domain.CreateCommentInput{
			BlogID: closed.ID, AuthorID: alice.ID, Content: "hi",
		})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("author unknown", func(t *testing.T) {
		f := newFixture(t)
		f.blogExists(openBlog)
		f.users.On("GetByID", mock.Anything, "ghost").Return(domain.User{}, domain.ErrNotFound).Once()

		_, err := f.service(domain.AuthorJoinAtRead).Create(context.TODO(), domain.CreateCommentInput{
			BlogID: openBlog.ID, AuthorID: "ghost", Content: "hi",
		})
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("reply to a reply attaches to the top-level comment", func(t *testing.T) {
		f := newFixture(t)
		f.blogExists(openBlog)
		f.users.On("GetByID", mock.Anything, bob.ID).Return(bob, nil).Once()
		f.comments.On("GetByID", mock.Anything, "reply-1").Return(&domain.Comment{
			ID: "reply-1", BlogID: openBlog.ID, ParentID: "root-1", Status: domain.StatusActive,
		}, nil).Once()
		f.comments.On("Store", mock.Anything, mock.MatchedBy(func(c *domain.Comment) bool {
			return c.ParentID == "root-1"
		})).Return(nil).Once()

		c, err := f.service(domain.AuthorJoinAtRead).Create(context.TODO(), domain.CreateCommentInput{
			BlogID: openBlog.ID, AuthorID: bob.ID, Content: "me too", ParentID: "reply-1",
		})
		require.NoError(t, err)
		assert.Equal(t, "root-1", c.ParentID)
	})

	t.Run("parent on another blog", func(t *testing.T) {
		f := newFixture(t)
		f.blogExists(openBlog)
		f.users.On("GetByID", mock.Anything, bob.ID).Return(bob, nil).Once()
		f.comments.On("GetByID", mock.Anything, "root-9").Return(&domain.Comment{
			ID: "root-9", BlogID: "blog-9", Status: domain.StatusActive,
		}, nil).Once()

		_, err := f.service(domain.AuthorJoinAtRead).Create(context.TODO(), domain.CreateCommentInput{
			BlogID: openBlog.ID, AuthorID: bob.ID, Content: "hi", ParentID: "root-9",
		})
		assert.ErrorIs(t, err, domain.ErrParentNotFound)
	})

	t.Run("parent deleted", func(t *testing.T) {
		f := newFixture(t)
		f.blogExists(openBlog)
		f.users.On("GetByID", mock.Anything, bob.ID).Return(bob, nil).Once()
		f.comments.On("GetByID", mock.Anything, "root-1").Return(&domain.Comment{
			ID: "root-1", BlogID: openBlog.ID, Status: domain.StatusDeleted,
		}, nil).Once()

		_, err := f.service(domain.AuthorJoinAtRead).Create(context.TODO(), domain.CreateCommentInput{
			BlogID: openBlog.ID, AuthorID: bob.ID, Content: "hi", ParentID: "root-1",
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("store unavailable", func(t *testing.T) {
		f := newFixture(t)
		f.blogExists(openBlog)
		f.users.On("GetByID", mock.Anything, alice.ID).Return(alice, nil).Once()
		f.comments.On("Store", mock.Anything, mock.AnythingOfType("*domain.Comment")).
			Return(errors.New("connection refused")).Once()

		_, err := f.service(domain.AuthorJoinAtRead).Create(context.TODO(), domain.CreateCommentInput{
			BlogID: openBlog.ID, AuthorID: alice.ID, Content: "hi",
		})
		assert.ErrorIs(t, err, domain.ErrServiceUnavailable)
	})
}

func TestListByBlog(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		f := newFixture(t)
		f.blogExists(openBlog)
		f.comments.On("FetchByBlog", mock.Anything, openBlog.ID, domain.StatusActive).Return([]*domain.Comment{
			{ID: "r1", BlogID: openBlog.ID, AuthorID: bob.ID, ParentID: "t1", Status: domain.StatusActive, CreatedAt: base.Add(2 * time.Minute)},
			{ID: "t1", BlogID: openBlog.ID, AuthorID: alice.ID, Status: domain.StatusActive, CreatedAt: base},
			{ID: "t2", BlogID: openBlog.ID, AuthorID: "ghost", Status: domain.StatusActive, CreatedAt: base.Add(time.Minute)},
			{ID: "orphan", BlogID: openBlog.ID, AuthorID: bob.ID, ParentID: "gone", Status: domain.StatusActive, CreatedAt: base},
			{ID: "hidden", BlogID: openBlog.ID, AuthorID: bob.ID, Status: domain.StatusHidden, CreatedAt: base},
		}, nil).Once()
		f.likes.On("GetLikes", mock.Anything, mock.Anything).
			Return(map[string][]string{"t1": {bob.ID}}, nil).Once()
		f.users.On("GetByIDs", mock.Anything, mock.Anything).Return([]domain.User{alice, bob}, nil).Once()

		thread, err := f.service(domain.AuthorJoinAtRead).ListByBlog(context.TODO(), openBlog.ID)
		require.NoError(t, err)

		require.Len(t, thread, 2)
		assert.Equal(t, "t2", thread[0].ID)
		assert.Equal(t, domain.PlaceholderAuthorName, thread[0].Author.Name)
		assert.NotNil(t, thread[0].Replies)
		assert.Empty(t, thread[0].Replies)

		assert.Equal(t, "t1", thread[1].ID)
		assert.Equal(t, "Alice", thread[1].Author.Name)
		assert.Equal(t, []string{bob.ID}, thread[1].Likes)
		require.Len(t, thread[1].Replies, 1)
		assert.Equal(t, "r1", thread[1].Replies[0].ID)
		assert.Equal(t, "Bob", thread[1].Replies[0].Author.Name)
	})

	t.Run("snapshot policy keeps stored authors", func(t *testing.T) {
		f := newFixture(t)
		f.blogExists(openBlog)
		f.comments.On("FetchByBlog", mock.Anything, openBlog.ID, domain.StatusActive).Return([]*domain.Comment{
			{ID: "t1", AuthorID: alice.ID, Author: &domain.AuthorView{ID: alice.ID, Name: "Alice (2019)"}, Status: domain.StatusActive, CreatedAt: base},
		}, nil).Once()
		f.likes.On("GetLikes", mock.Anything, []string{"t1"}).Return(map[string][]string{}, nil).Once()

		thread, err := f.service(domain.AuthorSnapshotAtWrite).ListByBlog(context.TODO(), openBlog.ID)
		require.NoError(t, err)
		require.Len(t, thread, 1)
		assert.Equal(t, "Alice (2019)", thread[0].Author.Name)
	})

	t.Run("like cache failure is ignored", func(t *testing.T) {
		f := newFixture(t)
		f.blogExists(openBlog)
		f.comments.On("FetchByBlog", mock.Anything, openBlog.ID, domain.StatusActive).Return([]*domain.Comment{
			{ID: "t1", AuthorID: alice.ID, Likes: []string{"u9"}, Status: domain.StatusActive, CreatedAt: base},
		}, nil).Once()
		f.likes.On("GetLikes", mock.Anything, []string{"t1"}).Return(nil, errors.New("redis down")).Once()
		f.users.On("GetByIDs", mock.Anything, []string{alice.ID}).Return([]domain.User{alice}, nil).Once()

		thread, err := f.service(domain.AuthorJoinAtRead).ListByBlog(context.TODO(), openBlog.ID)
		require.NoError(t, err)
		require.Len(t, thread, 1)
		assert.Equal(t, []string{"u9"}, thread[0].Likes)
	})

	t.Run("empty thread", func(t *testing.T) {
		f := newFixture(t)
		f.blogExists(openBlog)
		f.comments.On("FetchByBlog", mock.Anything, openBlog.ID, domain.StatusActive).Return([]*domain.Comment{}, nil).Once()

		thread, err := f.service(domain.AuthorJoinAtRead).ListByBlog(context.TODO(), openBlog.ID)
		require.NoError(t, err)
		assert.NotNil(t, thread)
		assert.Empty(t, thread)
	})

	t.Run("blog not found", func(t *testing.T) {
		f := newFixture(t)
		f.bloom.On("Exists", mock.Anything, "nope").Return(false, nil).Once()
		f.comments.On("FetchByBlog", mock.Anything, "nope", domain.StatusActive).Return([]*domain.Comment{}, nil).Maybe()

		_, err := f.service(domain.AuthorJoinAtRead).ListByBlog(context.TODO(), "nope")
		assert.ErrorIs(t, err, domain.ErrBlogNotFound)
	})

	t.Run("store unavailable", func(t *testing.T) {
		f := newFixture(t)
		f.bloom.On("Exists", mock.Anything, openBlog.ID).Return(true, nil).Maybe()
		f.blogs.On("GetByID", mock.Anything, openBlog.ID).Return(openBlog, nil).Maybe()
		f.comments.On("FetchByBlog", mock.Anything, openBlog.ID, domain.StatusActive).
			Return(nil, errors.New("i/o timeout")).Once()

		_, err := f.service(domain.AuthorJoinAtRead).ListByBlog(context.TODO(), openBlog.ID)
		assert.ErrorIs(t, err, domain.ErrServiceUnavailable)
	})

	t.Run("missing blog id", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.service(domain.AuthorJoinAtRead).ListByBlog(context.TODO(), "")
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})
}

func TestToggleLike(t *testing.T) {
	active := func() *domain.Comment {
		return &domain.Comment{ID: "c-1", BlogID: openBlog.ID, AuthorID: alice.ID, Likes: []string{"u7"}, Status: domain.StatusActive}
	}

	t.Run("cache hit", func(t *testing.T) {
		f := newFixture(t)
		f.comments.On("GetByID", mock.Anything, "c-1").Return(active(), nil).Once()
		f.likes.On("ToggleLike", mock.Anything, "c-1", bob.ID).
			Return(domain.LikeResult{Liked: true, LikeCount: 2}, nil).Once()
		f.worker.On("Send", mock.MatchedBy(func(l domain.CommentLike) bool {
			return l.CommentID == "c-1" && l.UserID == bob.ID
		}), domain.Like).Return(nil).Once()

		res, err := f.service(domain.AuthorJoinAtRead).ToggleLike(context.TODO(), "c-1", bob.ID)
		require.NoError(t, err)
		assert.True(t, res.Liked)
		assert.Equal(t, int64(2), res.LikeCount)
	})

	t.Run("cache miss seeds from store and retries", func(t *testing.T) {
		f := newFixture(t)
		f.comments.On("GetByID", mock.Anything, "c-1").Return(active(), nil).Once()
		f.likes.On("ToggleLike", mock.Anything, "c-1", "u7").
			Return(domain.LikeResult{}, domain.ErrCacheMiss).Once()
		f.likes.On("SeedLikes", mock.Anything, "c-1", []string{"u7"}).Return(nil).Once()
		f.likes.On("ToggleLike", mock.Anything, "c-1", "u7").
			Return(domain.LikeResult{Liked: false, LikeCount: 0}, nil).Once()
		f.worker.On("Send", mock.Anything, domain.Unlike).Return(nil).Once()

		res, err := f.service(domain.AuthorJoinAtRead).ToggleLike(context.TODO(), "c-1", "u7")
		require.NoError(t, err)
		assert.False(t, res.Liked)
		assert.Equal(t, int64(0), res.LikeCount)
	})

	t.Run("cache down falls back to the store", func(t *testing.T) {
		f := newFixture(t)
		f.comments.On("GetByID", mock.Anything, "c-1").Return(active(), nil).Once()
		f.likes.On("ToggleLike", mock.Anything, "c-1", bob.ID).
			Return(domain.LikeResult{}, errors.New("redis down")).Once()
		f.comments.On("ToggleLike", mock.Anything, "c-1", bob.ID).
			Return(domain.LikeResult{Liked: true, LikeCount: 2}, nil).Once()

		res, err := f.service(domain.AuthorJoinAtRead).ToggleLike(context.TODO(), "c-1", bob.ID)
		require.NoError(t, err)
		assert.True(t, res.Liked)
		f.worker.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("full queue reverts the cache", func(t *testing.T) {
		f := newFixture(t)
		f.comments.On("GetByID", mock.Anything, "c-1").Return(active(), nil).Once()
		f.likes.On("ToggleLike", mock.Anything, "c-1", bob.ID).
			Return(domain.LikeResult{Liked: true, LikeCount: 2}, nil).Once()
		f.worker.On("Send", mock.Anything, domain.Like).Return(domain.ErrQueueFull).Once()
		f.likes.On("ToggleLike", mock.Anything, "c-1", bob.ID).
			Return(domain.LikeResult{Liked: false, LikeCount: 1}, nil).Once()

		_, err := f.service(domain.AuthorJoinAtRead).ToggleLike(context.TODO(), "c-1", bob.ID)
		assert.ErrorIs(t, err, domain.ErrServiceUnavailable)
		f.likes.AssertNotCalled(t, "EvictLikes", mock.Anything, mock.Anything)
	})

	t.Run("full queue evicts when revert fails", func(t *testing.T) {
		f := newFixture(t)
		f.comments.On("GetByID", mock.Anything, "c-1").Return(active(), nil).Once()
		f.likes.On("ToggleLike", mock.Anything, "c-1", bob.ID).
			Return(domain.LikeResult{Liked: true, LikeCount: 2}, nil).Once()
		f.worker.On("Send", mock.Anything, domain.Like).Return(domain.ErrQueueFull).Once()
		f.likes.On("ToggleLike", mock.Anything, "c-1", bob.ID).
			Return(domain.LikeResult{}, errors.New("redis down")).Once()
		f.likes.On("EvictLikes", mock.Anything, []string{"c-1"}).Return(nil).Once()

		_, err := f.service(domain.AuthorJoinAtRead).ToggleLike(context.TODO(), "c-1", bob.ID)
		assert.ErrorIs(t, err, domain.ErrServiceUnavailable)
	})

	t.Run("both cache and store down", func(t *testing.T) {
		f := newFixture(t)
		f.comments.On("GetByID", mock.Anything, "c-1").Return(active(), nil).Once()
		f.likes.On("ToggleLike", mock.Anything, "c-1", bob.ID).
			Return(domain.LikeResult{}, errors.New("redis down")).Once()
		f.comments.On("ToggleLike", mock.Anything, "c-1", bob.ID).
			Return(domain.LikeResult{}, errors.New("mysql down")).Once()

		_, err := f.service(domain.AuthorJoinAtRead).ToggleLike(context.TODO(), "c-1", bob.ID)
		assert.ErrorIs(t, err, domain.ErrServiceUnavailable)
	})

	t.Run("comment not found", func(t *testing.T) {
		f := newFixture(t)
		f.comments.On("GetByID", mock.Anything, "c-404").Return(nil, domain.ErrNotFound).Once()

		_, err := f.service(domain.AuthorJoinAtRead).ToggleLike(context.TODO(), "c-404", bob.ID)
		assert.ErrorIs(t, err, domain.ErrCommentNotFound)
	})

	t.Run("hidden comment", func(t *testing.T) {
		f := newFixture(t)
		c := active()
		c.Status = domain.StatusHidden
		f.comments.On("GetByID", mock.Anything, "c-1").Return(c, nil).Once()

		_, err := f.service(domain.AuthorJoinAtRead).ToggleLike(context.TODO(), "c-1", bob.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.service(domain.AuthorJoinAtRead).ToggleLike(context.TODO(), "c-1", "")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}

func TestEdit(t *testing.T) {
	t.Run("author edits", func(t *testing.T) {
		f := newFixture(t)
		f.comments.On("GetByID", mock.Anything, "c-1").Return(&domain.Comment{
			ID: "c-1", AuthorID: alice.ID, Content: "old", Status: domain.StatusActive,
		}, nil).Once()
		f.comments.On("Update", mock.Anything, mock.MatchedBy(func(c *domain.Comment) bool {
			return c.Content == "new" && c.IsEdited && c.EditedAt != nil
		})).Return(nil).Once()
		f.likes.On("GetLikes", mock.Anything, []string{"c-1"}).
			Return(map[string][]string{"c-1": {bob.ID}}, nil).Once()
		f.users.On("GetByIDs", mock.Anything, []string{alice.ID}).Return([]domain.User{alice}, nil).Once()

		c, err := f.service(domain.AuthorJoinAtRead).Edit(context.TODO(), "c-1",
			domain.Identity{UserID: alice.ID, Role: domain.RoleUser}, " new ")
		require.NoError(t, err)
		assert.True(t, c.IsEdited)
		assert.Equal(t, "Alice", c.Author.Name)
		assert.Equal(t, []string{bob.ID}, c.Likes)
	})

	t.Run("someone else", func(t *testing.T) {
		f := newFixture(t)
		f.comments.On("GetByID", mock.Anything, "c-1").Return(&domain.Comment{
			ID: "c-1", AuthorID: alice.ID, Status: domain.StatusActive,
		}, nil).Once()

		_, err := f.service(domain.AuthorJoinAtRead).Edit(context.TODO(), "c-1",
			domain.Identity{UserID: bob.ID, Role: domain.RoleAdmin}, "new")
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("blank content", func(t *testing.T) {
		f := newFixture(t)
		f.comments.On("GetByID", mock.Anything, "c-1").Return(&domain.Comment{
			ID: "c-1", AuthorID: alice.ID, Status: domain.StatusActive,
		}, nil).Once()

		_, err := f.service(domain.AuthorJoinAtRead).Edit(context.TODO(), "c-1",
			domain.Identity{UserID: alice.ID}, "  ")
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})
}

func TestDelete(t *testing.T) {
	owned := func() *domain.Comment {
		return &domain.Comment{ID: "c-1", AuthorID: alice.ID, Status: domain.StatusActive}
	}

	t.Run("author deletes", func(t *testing.T) {
		f := newFixture(t)
		f.comments.On("GetByID", mock.Anything, "c-1").Return(owned(), nil).Once()
		f.comments.On("Update", mock.Anything, mock.MatchedBy(func(c *domain.Comment) bool {
			return c.Status == domain.StatusDeleted
		})).Return(nil).Once()

		err := f.service(domain.AuthorJoinAtRead).Delete(context.TODO(), "c-1", domain.Identity{UserID: alice.ID})
		assert.NoError(t, err)
	})

	t.Run("admin deletes", func(t *testing.T) {
		f := newFixture(t)
		f.comments.On("GetByID", mock.Anything, "c-1").Return(owned(), nil).Once()
		f.comments.On("Update", mock.Anything, mock.Anything).Return(nil).Once()

		err := f.service(domain.AuthorJoinAtRead).Delete(context.TODO(), "c-1",
			domain.Identity{UserID: "root", Role: domain.RoleAdmin})
		assert.NoError(t, err)
	})

	t.Run("stranger", func(t *testing.T) {
		f := newFixture(t)
		f.comments.On("GetByID", mock.Anything, "c-1").Return(owned(), nil).Once()

		err := f.service(domain.AuthorJoinAtRead).Delete(context.TODO(), "c-1", domain.Identity{UserID: bob.ID})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestModerate(t *testing.T) {
	t.Run("hide", func(t *testing.T) {
		f := newFixture(t)
		f.comments.On("GetByID", mock.Anything, "c-1").Return(&domain.Comment{
			ID: "c-1", Status: domain.StatusActive,
		}, nil).Once()
		f.comments.On("Update", mock.Anything, mock.MatchedBy(func(c *domain.Comment) bool {
			return c.Status == domain.StatusHidden
		})).Return(nil).Once()

		err := f.service(domain.AuthorJoinAtRead).Moderate(context.TODO(), "c-1", domain.StatusHidden)
		assert.NoError(t, err)
	})

	t.Run("restore deleted", func(t *testing.T) {
		f := newFixture(t)
		f.comments.On("GetByID", mock.Anything, "c-1").Return(&domain.Comment{
			ID: "c-1", Status: domain.StatusDeleted,
		}, nil).Once()
		f.comments.On("Update", mock.Anything, mock.Anything).Return(nil).Once()

		err := f.service(domain.AuthorJoinAtRead).Moderate(context.TODO(), "c-1", domain.StatusActive)
		assert.NoError(t, err)
	})

	t.Run("unknown status", func(t *testing.T) {
		f := newFixture(t)
		err := f.service(domain.AuthorJoinAtRead).Moderate(context.TODO(), "c-1", domain.CommentStatus("spam"))
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})
}
