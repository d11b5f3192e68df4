package mysql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Guyuepp/blog-discussion/domain"
	"github.com/Guyuepp/blog-discussion/internal/repository/mysql/model"
)

type commentRepository struct {
	DB *gorm.DB
}

var _ domain.CommentRepository = (*commentRepository)(nil)

// NewCommentRepository 创建评论的数据库操作层
func NewCommentRepository(db *gorm.DB) *commentRepository {
	return &commentRepository{
		DB: db,
	}
}

func (c *commentRepository) Store(ctx context.Context, comment *domain.Comment) error {
	if comment.ID == "" {
		comment.ID = uuid.NewString()
	}
	return c.DB.WithContext(ctx).Create(model.NewCommentFromDomain(comment)).Error
}

func (c *commentRepository) GetByID(ctx context.Context, id string) (*domain.Comment, error) {
	var m model.Comment
	err := c.DB.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	res := m.ToDomain()
	likes, err := c.fetchLikes(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	if l, ok := likes[id]; ok {
		res.Likes = l
	}
	return res, nil
}

func (c *commentRepository) FetchByBlog(ctx context.Context, blogID string, status domain.CommentStatus) ([]*domain.Comment, error) {
	var comments []model.Comment
	err := c.DB.WithContext(ctx).
		Where("blog_id = ? AND status = ?", blogID, string(status)).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}

	res := make([]*domain.Comment, 0, len(comments))
	ids := make([]string, 0, len(comments))
	for i := range comments {
		res = append(res, comments[i].ToDomain())
		ids = append(ids, comments[i].ID)
	}
	if len(ids) == 0 {
		return res, nil
	}

	likes, err := c.fetchLikes(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, r := range res {
		if l, ok := likes[r.ID]; ok {
			r.Likes = l
		}
	}
	return res, nil
}

// fetchLikes 批量读取点赞集合, 按点赞时间排序
func (c *commentRepository) fetchLikes(ctx context.Context, commentIDs []string) (map[string][]string, error) {
	var rows []model.CommentLike
	err := c.DB.WithContext(ctx).
		Where("comment_id IN ?", commentIDs).
		Order("created_at").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make(map[string][]string, len(commentIDs))
	for _, row := range rows {
		res[row.CommentID] = append(res[row.CommentID], row.UserID)
	}
	return res, nil
}

func (c *commentRepository) Update(ctx context.Context, comment *domain.Comment) error {
	result := c.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Where("id = ?", comment.ID).
		Updates(map[string]any{
			"content":    comment.Content,
			"is_edited":  comment.IsEdited,
			"edited_at":  comment.EditedAt,
			"status":     string(comment.Status),
			"updated_at": comment.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ToggleLike 在一个事务里完成: 删除成功则为取消赞, 否则插入
func (c *commentRepository) ToggleLike(ctx context.Context, commentID string, userID string) (res domain.LikeResult, err error) {
	err = c.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var exists int64
		if err := tx.Model(&model.Comment{}).Where("id = ?", commentID).Count(&exists).Error; err != nil {
			return err
		}
		if exists == 0 {
			return domain.ErrNotFound
		}

		deleted := tx.Where("comment_id = ? AND user_id = ?", commentID, userID).Delete(&model.CommentLike{})
		if deleted.Error != nil {
			return deleted.Error
		}
		if deleted.RowsAffected == 0 {
			like := model.NewCommentLikeFromDomain(domain.CommentLike{CommentID: commentID, UserID: userID})
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&like).Error; err != nil {
				return err
			}
			res.Liked = true
		}

		count, err := recountLikes(tx, commentID)
		if err != nil {
			return err
		}
		res.LikeCount = count
		return nil
	})
	return
}

func (c *commentRepository) ApplyLikeChanges(ctx context.Context, changes domain.LikeStateChanges) error {
	if len(changes.ToAdd) == 0 && len(changes.ToRemove) == 0 {
		return nil
	}
	return c.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		filteredAdd := make([]model.CommentLike, 0, len(changes.ToAdd))
		if len(changes.ToAdd) > 0 {
			toAddIDs := make([]string, 0, len(changes.ToAdd))
			seen := make(map[string]bool)
			for _, row := range changes.ToAdd {
				if !seen[row.CommentID] {
					toAddIDs = append(toAddIDs, row.CommentID)
					seen[row.CommentID] = true
				}
			}

			var validIDs []string
			if err := tx.Model(&model.Comment{}).
				Where("id IN ?", toAddIDs).
				Pluck("id", &validIDs).Error; err != nil {
				return err
			}

			validMap := make(map[string]bool, len(validIDs))
			for _, id := range validIDs {
				validMap[id] = true
			}

			for _, row := range changes.ToAdd {
				if validMap[row.CommentID] {
					filteredAdd = append(filteredAdd, model.NewCommentLikeFromDomain(row))
				} else {
					logrus.Warnf("Dropped orphan like for comment %s", row.CommentID)
				}
			}
		}

		for _, row := range changes.ToRemove {
			if err := tx.Where("comment_id = ? AND user_id = ?", row.CommentID, row.UserID).
				Delete(&model.CommentLike{}).Error; err != nil {
				return err
			}
		}

		if len(filteredAdd) > 0 {
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&filteredAdd).Error; err != nil {
				return err
			}
		}

		touched := make(map[string]struct{})
		for _, row := range changes.ToRemove {
			touched[row.CommentID] = struct{}{}
		}
		for _, row := range filteredAdd {
			touched[row.CommentID] = struct{}{}
		}
		for id := range touched {
			if _, err := recountLikes(tx, id); err != nil {
				return err
			}
		}
		return nil
	})
}

// recountLikes 以 comment_likes 为准回写 like_count
func recountLikes(tx *gorm.DB, commentID string) (int64, error) {
	var count int64
	if err := tx.Model(&model.CommentLike{}).
		Where("comment_id = ?", commentID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	if err := tx.Model(&model.Comment{}).
		Where("id = ?", commentID).
		UpdateColumn("like_count", count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
