package comment

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Guyuepp/blog-discussion/domain"
	"github.com/Guyuepp/blog-discussion/internal/metrics"
)

type Service struct {
	commentRepo     domain.CommentRepository
	blogRepo        domain.BlogRepository
	userRepo        domain.UserRepository
	bloomRepo       domain.BloomRepository
	likeCache       domain.LikeCache
	syncLikesWorker domain.SyncLikesWorker
	authorPolicy    domain.AuthorPolicy
	now             func() time.Time
}

var _ domain.CommentUsecase = (*Service)(nil)

// NewService will create a new comment service object
func NewService(
	c domain.CommentRepository,
	b domain.BlogRepository,
	u domain.UserRepository,
	bloom domain.BloomRepository,
	lc domain.LikeCache,
	w domain.SyncLikesWorker,
	policy domain.AuthorPolicy,
) *Service {
	if policy == "" {
		policy = domain.AuthorJoinAtRead
	}
	return &Service{
		commentRepo:     c,
		blogRepo:        b,
		userRepo:        u,
		bloomRepo:       bloom,
		likeCache:       lc,
		syncLikesWorker: w,
		authorPolicy:    policy,
		now:             time.Now,
	}
}

// storeError keeps taxonomy errors as they are and turns anything else into ErrServiceUnavailable.
func storeError(op string, err error) error {
	for _, kind := range []error{
		domain.ErrNotFound,
		domain.ErrInvalidArgument,
		domain.ErrUnauthorized,
		domain.ErrForbidden,
		domain.ErrConflict,
		domain.ErrServiceUnavailable,
	} {
		if errors.Is(err, kind) {
			return err
		}
	}
	logrus.Errorf("%s: %v", op, err)
	return domain.ErrServiceUnavailable
}

// mustExists checks the bloom filter before asking the blog store.
// With trustMiss false a bloom miss still goes to the store, covering blogs
// created since the last refresh.
func (s *Service) mustExists(ctx context.Context, blogID string, trustMiss bool) (domain.Blog, error) {
	exists, err := s.bloomRepo.Exists(ctx, blogID)
	if err != nil {
		logrus.Warnf("bloom filter check failed for blog %s: %v", blogID, err)
	}
	bloomMiss := err == nil && !exists
	if bloomMiss && trustMiss {
		logrus.Debugf("bloom filter says blog %s does not exist", blogID)
		return domain.Blog{}, domain.ErrBlogNotFound
	}

	blog, err := s.blogRepo.GetByID(ctx, blogID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Blog{}, domain.ErrBlogNotFound
	}
	if err != nil {
		return domain.Blog{}, storeError("get blog", err)
	}
	if bloomMiss {
		if err := s.bloomRepo.Add(ctx, blogID); err != nil {
			logrus.Warnf("failed to add blog %s to bloom filter: %v", blogID, err)
		}
	}
	return blog, nil
}

func (s *Service) getActive(ctx context.Context, commentID string) (*domain.Comment, error) {
	if commentID == "" {
		return nil, domain.ErrMalformedID
	}
	c, err := s.commentRepo.GetByID(ctx, commentID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrCommentNotFound
	}
	if err != nil {
		return nil, storeError("get comment", err)
	}
	if c.Status != domain.StatusActive {
		return nil, domain.ErrCommentNotFound
	}
	return c, nil
}

func (s *Service) Create(ctx context.Context, in domain.CreateCommentInput) (*domain.Comment, error) {
	if in.AuthorID == "" {
		return nil, domain.ErrUnauthorized
	}
	content := strings.TrimSpace(in.Content)
	if content == "" && len(in.Attachments) == 0 {
		return nil, domain.ErrEmptyComment
	}
	if in.BlogID == "" {
		return nil, domain.NewError(domain.ErrInvalidArgument, "blog id is required")
	}

	now := s.now()
	attachments, err := normalizeAttachments(in.Attachments, now)
	if err != nil {
		return nil, err
	}

	blog, err := s.mustExists(ctx, in.BlogID, false)
	if err != nil {
		return nil, err
	}
	if !blog.CommentsEnabled {
		return nil, domain.ErrCommentsDisabled
	}

	author, err := s.userRepo.GetByID(ctx, in.AuthorID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrUnauthorized
	}
	if err != nil {
		return nil, storeError("get author", err)
	}

	parentID, err := s.resolveParent(ctx, in.BlogID, in.ParentID)
	if err != nil {
		return nil, err
	}

	view := domain.NewAuthorView(author)
	c := &domain.Comment{
		BlogID:      in.BlogID,
		AuthorID:    author.ID,
		Content:     content,
		Attachments: attachments,
		ParentID:    parentID,
		Likes:       []string{},
		Status:      domain.StatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if s.authorPolicy == domain.AuthorSnapshotAtWrite {
		c.Author = &view
	}

	if err := s.commentRepo.Store(ctx, c); err != nil {
		return nil, storeError("store comment", err)
	}
	c.Author = &view
	metrics.CommentsCreated.Inc()
	return c, nil
}

// resolveParent returns the top-level comment a reply hangs under.
// A reply to a reply is attached to the original top-level comment.
func (s *Service) resolveParent(ctx context.Context, blogID, parentID string) (string, error) {
	if parentID == "" {
		return "", nil
	}
	parent, err := s.commentRepo.GetByID(ctx, parentID)
	if errors.Is(err, domain.ErrNotFound) {
		return "", domain.ErrParentNotFound
	}
	if err != nil {
		return "", storeError("get parent comment", err)
	}
	if parent.BlogID != blogID || parent.Status != domain.StatusActive {
		return "", domain.ErrParentNotFound
	}
	if !parent.IsTopLevel() {
		return parent.ParentID, nil
	}
	return parent.ID, nil
}

func normalizeAttachments(in []domain.Attachment, now time.Time) ([]domain.Attachment, error) {
	out := make([]domain.Attachment, 0, len(in))
	for _, a := range in {
		if strings.TrimSpace(a.URL) == "" {
			return nil, domain.NewError(domain.ErrInvalidArgument, "attachment url is required")
		}
		if a.SizeBytes < 0 {
			return nil, domain.NewError(domain.ErrInvalidArgument, "attachment size must not be negative")
		}
		a.Kind = domain.KindFromMIME(a.MimeType)
		if a.OriginalName == "" {
			a.OriginalName = a.Filename
		}
		if a.UploadedAt.IsZero() {
			a.UploadedAt = now
		}
		out = append(out, a)
	}
	return out, nil
}

func (s *Service) ListByBlog(ctx context.Context, blogID string) ([]*domain.ThreadNode, error) {
	if blogID == "" {
		return nil, domain.NewError(domain.ErrInvalidArgument, "blog id is required")
	}

	var comments []*domain.Comment
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := s.mustExists(gctx, blogID, true)
		return err
	})
	g.Go(func() error {
		res, err := s.commentRepo.FetchByBlog(gctx, blogID, domain.StatusActive)
		if err != nil {
			return storeError("fetch comments", err)
		}
		comments = res
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	active := make([]*domain.Comment, 0, len(comments))
	for _, c := range comments {
		if c == nil || c.Status != domain.StatusActive {
			continue
		}
		c.Normalize()
		active = append(active, c)
	}

	s.overlayLikes(ctx, active)
	s.resolveAuthors(ctx, active)

	thread := AssembleThread(active)
	if dropped := len(active) - CountNodes(thread); dropped > 0 {
		metrics.OrphanedReplies.Add(float64(dropped))
		logrus.Debugf("dropped %d orphaned replies from blog %s", dropped, blogID)
	}
	return thread, nil
}

// overlayLikes prefers like sets held in the cache, which may be ahead of the store.
func (s *Service) overlayLikes(ctx context.Context, comments []*domain.Comment) {
	if len(comments) == 0 {
		return
	}
	ids := make([]string, len(comments))
	for i, c := range comments {
		ids[i] = c.ID
	}
	loaded, err := s.likeCache.GetLikes(ctx, ids)
	if err != nil {
		logrus.Warnf("failed to GetLikes from redis: %v", err)
		return
	}
	for _, c := range comments {
		if likes, ok := loaded[c.ID]; ok {
			c.Likes = likes
		}
	}
}

// resolveAuthors fills Author per policy. Unresolvable authors get the placeholder.
func (s *Service) resolveAuthors(ctx context.Context, comments []*domain.Comment) {
	need := make([]string, 0, len(comments))
	seen := make(map[string]bool)
	for _, c := range comments {
		if s.needsAuthorLookup(c) && !seen[c.AuthorID] {
			seen[c.AuthorID] = true
			need = append(need, c.AuthorID)
		}
	}
	if len(need) == 0 {
		return
	}

	userMap := make(map[string]domain.User, len(need))
	users, err := s.userRepo.GetByIDs(ctx, need)
	if err != nil {
		logrus.Warnf("failed to resolve comment authors, rendering placeholders: %v", err)
	}
	for _, u := range users {
		userMap[u.ID] = u
	}

	for _, c := range comments {
		if !s.needsAuthorLookup(c) {
			continue
		}
		view := domain.PlaceholderAuthor(c.AuthorID)
		if u, ok := userMap[c.AuthorID]; ok {
			view = domain.NewAuthorView(u)
		}
		c.Author = &view
	}
}

func (s *Service) needsAuthorLookup(c *domain.Comment) bool {
	return s.authorPolicy == domain.AuthorJoinAtRead || c.Author == nil
}

func (s *Service) ToggleLike(ctx context.Context, commentID string, userID string) (domain.LikeResult, error) {
	if userID == "" {
		return domain.LikeResult{}, domain.ErrUnauthorized
	}
	c, err := s.getActive(ctx, commentID)
	if err != nil {
		return domain.LikeResult{}, err
	}

	res, err := s.likeCache.ToggleLike(ctx, c.ID, userID)
	if errors.Is(err, domain.ErrCacheMiss) {
		// 未命中缓存, 从存储加载点赞集合后重试
		if err = s.likeCache.SeedLikes(ctx, c.ID, c.Likes); err == nil {
			res, err = s.likeCache.ToggleLike(ctx, c.ID, userID)
		}
	}
	if err != nil {
		logrus.Warnf("like cache unavailable for comment %s, toggling in store: %v", c.ID, err)
		res, err = s.commentRepo.ToggleLike(ctx, c.ID, userID)
		if errors.Is(err, domain.ErrNotFound) {
			return domain.LikeResult{}, domain.ErrCommentNotFound
		}
		if err != nil {
			return domain.LikeResult{}, storeError("toggle like", err)
		}
		metrics.LikeToggles.WithLabelValues(likeAction(res).String(), "store").Inc()
		return res, nil
	}

	action := likeAction(res)
	err = s.syncLikesWorker.Send(domain.CommentLike{
		CommentID: c.ID,
		UserID:    userID,
		CreatedAt: s.now(),
	}, action)
	if err != nil {
		// 落库队列已满, 撤销缓存里的修改
		s.revertLike(ctx, c.ID, userID, res)
		return domain.LikeResult{}, storeError("queue like", err)
	}
	metrics.LikeToggles.WithLabelValues(action.String(), "cache").Inc()
	return res, nil
}

// revertLike undoes a cache toggle that will never reach the store.
// If the set cannot be restored it is evicted and reloaded from the store on next use.
func (s *Service) revertLike(ctx context.Context, commentID, userID string, applied domain.LikeResult) {
	res, err := s.likeCache.ToggleLike(ctx, commentID, userID)
	if err == nil && res.Liked != applied.Liked {
		return
	}
	logrus.Warnf("failed to revert like of comment %s, evicting: %v", commentID, err)
	if err := s.likeCache.EvictLikes(ctx, []string{commentID}); err != nil {
		logrus.Errorf("failed to evict likes of comment %s: %v", commentID, err)
	}
}

func likeAction(res domain.LikeResult) domain.LikeAction {
	if res.Liked {
		return domain.Like
	}
	return domain.Unlike
}

func (s *Service) Edit(ctx context.Context, commentID string, actor domain.Identity, content string) (*domain.Comment, error) {
	if actor.UserID == "" {
		return nil, domain.ErrUnauthorized
	}
	c, err := s.getActive(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if c.AuthorID != actor.UserID {
		return nil, domain.ErrForbidden
	}

	content = strings.TrimSpace(content)
	if content == "" && len(c.Attachments) == 0 {
		return nil, domain.ErrEmptyComment
	}

	now := s.now()
	c.Content = content
	c.IsEdited = true
	c.EditedAt = &now
	c.UpdatedAt = now
	if err := s.commentRepo.Update(ctx, c); err != nil {
		return nil, storeError("update comment", err)
	}

	c.Normalize()
	s.overlayLikes(ctx, []*domain.Comment{c})
	s.resolveAuthors(ctx, []*domain.Comment{c})
	return c, nil
}

func (s *Service) Delete(ctx context.Context, commentID string, actor domain.Identity) error {
	if actor.UserID == "" {
		return domain.ErrUnauthorized
	}
	c, err := s.getActive(ctx, commentID)
	if err != nil {
		return err
	}
	if c.AuthorID != actor.UserID && !actor.IsAdmin() {
		return domain.ErrForbidden
	}

	c.Status = domain.StatusDeleted
	c.UpdatedAt = s.now()
	if err := s.commentRepo.Update(ctx, c); err != nil {
		return storeError("delete comment", err)
	}
	return nil
}

func (s *Service) Moderate(ctx context.Context, commentID string, status domain.CommentStatus) error {
	if !status.Valid() {
		return domain.NewError(domain.ErrInvalidArgument, "invalid comment status")
	}
	if commentID == "" {
		return domain.ErrMalformedID
	}
	c, err := s.commentRepo.GetByID(ctx, commentID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ErrCommentNotFound
	}
	if err != nil {
		return storeError("get comment", err)
	}
	if c.Status == status {
		return nil
	}

	c.Status = status
	c.UpdatedAt = s.now()
	if err := s.commentRepo.Update(ctx, c); err != nil {
		return storeError("moderate comment", err)
	}
	return nil
}
