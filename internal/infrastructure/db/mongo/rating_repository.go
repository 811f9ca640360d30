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

const collectionRatings = "ratings"

type RatingRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewRatingRepository(db *mongo.Database) *RatingRepository {
	return &RatingRepository{db: db, col: db.Collection(collectionRatings)}
}

// Upsert inserts the rating or replaces the score of the existing rating for
// the same (painting, user) pair.
func (r *RatingRepository) Upsert(ctx context.Context, in *domain.Rating) (*domain.Rating, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	key := bson.M{"painting_id": in.PaintingID, "user_id": in.UserID}

	var existing domain.Rating
	err := r.col.FindOne(ctx, key).Decode(&existing)
	switch {
	case err == nil:
		if _, err := r.col.UpdateOne(ctx, key, bson.M{"$set": bson.M{"score": in.Score}}); err != nil {
			return nil, err
		}
		existing.Score = in.Score
		return &existing, nil

	case errors.Is(err, mongo.ErrNoDocuments):
		id, err := nextSequence(ctx, r.db, collectionRatings)
		if err != nil {
			return nil, err
		}
		clone := *in
		clone.ID = id
		if _, err := r.col.InsertOne(ctx, clone); err != nil {
			return nil, err
		}
		return &clone, nil

	default:
		return nil, err
	}
}

func (r *RatingRepository) FindByID(ctx context.Context, id int) (*domain.Rating, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var rt domain.Rating
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&rt); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRatingNotFound
		}
		return nil, err
	}
	return &rt, nil
}

func (r *RatingRepository) List(ctx context.Context, filter ports.ListRatingsFilter) ([]domain.Rating, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.PaintingID != 0 {
		query["painting_id"] = filter.PaintingID
	}
	if filter.UserID != 0 {
		query["user_id"] = filter.UserID
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

	var items []domain.Rating
	if err := cur.All(ctx, &items); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *RatingRepository) Delete(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrRatingNotFound
	}
	return nil
}

// Aggregate returns the average score and rating count for a painting.
func (r *RatingRepository) Aggregate(ctx context.Context, paintingID int) (float64, int, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"painting_id": paintingID}}},
		{{Key: "$group", Value: bson.M{
			"_id":     nil,
			"average": bson.M{"$avg": "$score"},
			"count":   bson.M{"$sum": 1},
		}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, err
	}
	defer cur.Close(ctx)

	var results []struct {
		Average float64 `bson:"average"`
		Count   int     `bson:"count"`
	}
	if err := cur.All(ctx, &results); err != nil {
		return 0, 0, err
	}
	if len(results) == 0 {
		return 0, 0, nil
	}
	return results[0].Average, results[0].Count, nil
}

// EnsureIndexes enforces one rating per (painting, user).
func (r *RatingRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "painting_id", Value: 1}, {Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
