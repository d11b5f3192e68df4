package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/Guyuepp/blog-discussion/domain"
)

type blogRepository struct {
	col *mongo.Collection
}

var _ domain.BlogRepository = (*blogRepository)(nil)

func NewBlogRepository(db *mongo.Database) *blogRepository {
	return &blogRepository{col: db.Collection(CollectionBlogs)}
}

func (r *blogRepository) GetByID(ctx context.Context, id string) (domain.Blog, error) {
	oid, err := parseID(id)
	if err != nil {
		return domain.Blog{}, err
	}
	var doc blogDocument
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Blog{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Blog{}, err
	}
	return doc.toDomain(), nil
}

func (r *blogRepository) FetchIDs(ctx context.Context, cursor string, limit int64) ([]string, error) {
	filter := bson.M{}
	if cursor != "" {
		oid, err := parseID(cursor)
		if err != nil {
			return nil, err
		}
		filter["_id"] = bson.M{"$gt": oid}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetProjection(bson.M{"_id": 1}).
		SetLimit(limit)
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []struct {
		ID bson.ObjectID `bson:"_id"`
	}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	ids := make([]string, len(docs))
	for i, d := range docs {
		ids[i] = d.ID.Hex()
	}
	return ids, nil
}
