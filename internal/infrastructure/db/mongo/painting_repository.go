package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/artgallery/gallery-service/internal/core/domain"
	"github.com/artgallery/gallery-service/internal/core/ports"
)

const collectionPaintings = "paintings"

type PaintingRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewPaintingRepository(db *mongo.Database) *PaintingRepository {
	return &PaintingRepository{db: db, col: db.Collection(collectionPaintings)}
}

// Insert stores a new painting with the next numeric id.
func (r *PaintingRepository) Insert(ctx context.Context, p *domain.Painting) (*domain.Painting, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextSequence(ctx, r.db, collectionPaintings)
	if err != nil {
		return nil, err
	}

	clone := *p
	clone.ID = id
	if _, err := r.col.InsertOne(ctx, clone); err != nil {
		return nil, err
	}
	return &clone, nil
}

func (r *PaintingRepository) FindByID(ctx context.Context, id int) (*domain.Painting, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.Painting
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPaintingNotFound
		}
		return nil, err
	}
	return &p, nil
}

// List returns a page of paintings matching filter and the total count.
func (r *PaintingRepository) List(ctx context.Context, filter ports.ListPaintingsFilter) ([]domain.Painting, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.CategoryID != 0 {
		query["category_id"] = filter.CategoryID
	}
	if filter.ArtistID != 0 {
		query["artist_id"] = filter.ArtistID
	}
	if filter.Featured {
		query["is_featured"] = true
	}
	if filter.Search != "" {
		regex := bson.M{"$regex": filter.Search, "$options": "i"}
		query["$or"] = []bson.M{{"title": regex}, {"description": regex}}
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var items []domain.Painting
	if err := cur.All(ctx, &items); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Update replaces the painting document by id.
func (r *PaintingRepository) Update(ctx context.Context, p *domain.Painting) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrPaintingNotFound
	}
	return nil
}

func (r *PaintingRepository) Delete(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrPaintingNotFound
	}
	return nil
}

// UpdateRatingStats stores the denormalised aggregate rating on the painting.
func (r *PaintingRepository) UpdateRatingStats(ctx context.Context, id int, average float64, count int) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"average_rating": average,
		"rating_count":   count,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrPaintingNotFound
	}
	return nil
}

// UpdateCommentCount stores the denormalised comment count on the painting.
func (r *PaintingRepository) UpdateCommentCount(ctx context.Context, id, count int) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"comment_count": count,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrPaintingNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes the painting list filters rely on.
func (r *PaintingRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "artist_id", Value: 1}}},
		{Keys: bson.D{{Key: "category_id", Value: 1}}},
		{Keys: bson.D{{Key: "is_featured", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
