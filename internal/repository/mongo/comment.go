package mongo

import (
	"context"
	"errors"
	"slices"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/Guyuepp/blog-discussion/domain"
)

type commentRepository struct {
	col *mongo.Collection
}

var _ domain.CommentRepository = (*commentRepository)(nil)

func NewCommentRepository(db *mongo.Database) *commentRepository {
	return &commentRepository{col: db.Collection(CollectionComments)}
}

func (r *commentRepository) Store(ctx context.Context, c *domain.Comment) error {
	doc, err := newCommentDocument(c)
	if err != nil {
		return err
	}
	if doc.ID.IsZero() {
		doc.ID = bson.NewObjectID()
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return err
	}
	c.ID = doc.ID.Hex()
	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, id string) (*domain.Comment, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var doc commentDocument
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *commentRepository) FetchByBlog(ctx context.Context, blogID string, status domain.CommentStatus) ([]*domain.Comment, error) {
	oid, err := parseID(blogID)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"blog": oid, "status": string(status)}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []commentDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	res := make([]*domain.Comment, 0, len(docs))
	for i := range docs {
		res = append(res, docs[i].toDomain())
	}
	return res, nil
}

func (r *commentRepository) Update(ctx context.Context, c *domain.Comment) error {
	oid, err := parseID(c.ID)
	if err != nil {
		return err
	}
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{
			"content":    c.Content,
			"is_edited":  c.IsEdited,
			"edited_at":  c.EditedAt,
			"status":     string(c.Status),
			"updated_at": c.UpdatedAt,
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// toggleLikeUpdate 在一次更新内翻转成员关系
func toggleLikeUpdate(uid bson.ObjectID) mongo.Pipeline {
	likes := bson.D{{Key: "$ifNull", Value: bson.A{"$likes", bson.A{}}}}
	return mongo.Pipeline{
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "likes", Value: bson.D{{Key: "$cond", Value: bson.A{
				bson.D{{Key: "$in", Value: bson.A{uid, likes}}},
				bson.D{{Key: "$setDifference", Value: bson.A{likes, bson.A{uid}}}},
				bson.D{{Key: "$concatArrays", Value: bson.A{likes, bson.A{uid}}}},
			}}}},
		}}},
	}
}

func (r *commentRepository) ToggleLike(ctx context.Context, commentID string, userID string) (domain.LikeResult, error) {
	cid, err := parseID(commentID)
	if err != nil {
		return domain.LikeResult{}, err
	}
	uid, err := parseID(userID)
	if err != nil {
		return domain.LikeResult{}, err
	}

	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"likes": 1})
	var doc struct {
		Likes []bson.ObjectID `bson:"likes"`
	}
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": cid}, toggleLikeUpdate(uid), opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.LikeResult{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.LikeResult{}, err
	}
	return domain.LikeResult{
		Liked:     slices.Contains(doc.Likes, uid),
		LikeCount: int64(len(doc.Likes)),
	}, nil
}

func (r *commentRepository) ApplyLikeChanges(ctx context.Context, changes domain.LikeStateChanges) error {
	models := likeChangeModels(changes)
	if len(models) == 0 {
		return nil
	}
	_, err := r.col.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(false))
	return err
}

func likeChangeModels(changes domain.LikeStateChanges) []mongo.WriteModel {
	models := make([]mongo.WriteModel, 0, len(changes.ToAdd)+len(changes.ToRemove))
	add := func(row domain.CommentLike, op string) {
		cid, err := parseID(row.CommentID)
		if err != nil {
			logrus.Warnf("Dropped like change for malformed comment id %q", row.CommentID)
			return
		}
		uid, err := parseID(row.UserID)
		if err != nil {
			logrus.Warnf("Dropped like change for malformed user id %q", row.UserID)
			return
		}
		models = append(models, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": cid}).
			SetUpdate(bson.M{op: bson.M{"likes": uid}}))
	}
	for _, row := range changes.ToRemove {
		add(row, "$pull")
	}
	for _, row := range changes.ToAdd {
		add(row, "$addToSet")
	}
	return models
}
