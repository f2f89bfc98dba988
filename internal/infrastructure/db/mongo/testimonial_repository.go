package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Lokeshnegi69/story-board-interior-backend/internal/core/domain"
	"github.com/Lokeshnegi69/story-board-interior-backend/internal/core/ports"
)

const collectionTestimonials = "testimonials"

type TestimonialRepository struct {
	col *mongo.Collection
}

func NewTestimonialRepository(db *mongo.Database) *TestimonialRepository {
	return &TestimonialRepository{col: db.Collection(collectionTestimonials)}
}

func (r *TestimonialRepository) Create(ctx context.Context, t *domain.Testimonial) (*domain.Testimonial, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	t.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, t); err != nil {
		return nil, fmt.Errorf("insert testimonial: %w", err)
	}
	return t, nil
}

func (r *TestimonialRepository) FindByID(ctx context.Context, id string) (*domain.Testimonial, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var t domain.Testimonial
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&t); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTestimonialNotFound
		}
		return nil, fmt.Errorf("find testimonial: %w", err)
	}
	return &t, nil
}

func (r *TestimonialRepository) Update(ctx context.Context, t *domain.Testimonial) (*domain.Testimonial, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": t.ID}, t)
	if err != nil {
		return nil, fmt.Errorf("update testimonial: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrTestimonialNotFound
	}
	return t, nil
}

func (r *TestimonialRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete testimonial: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrTestimonialNotFound
	}
	return nil
}

func (r *TestimonialRepository) List(ctx context.Context, filter ports.ListTestimonialsFilter) ([]*domain.Testimonial, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := testimonialQuery(filter)
	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count testimonials: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "display_order", Value: 1}, {Key: "created_at", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list testimonials: %w", err)
	}
	defer cur.Close(ctx)

	var testimonials []*domain.Testimonial
	if err := cur.All(ctx, &testimonials); err != nil {
		return nil, 0, fmt.Errorf("decode testimonials: %w", err)
	}
	return testimonials, total, nil
}

func (r *TestimonialRepository) Count(ctx context.Context, filter ports.ListTestimonialsFilter) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, testimonialQuery(filter))
	if err != nil {
		return 0, fmt.Errorf("count testimonials: %w", err)
	}
	return n, nil
}

func (r *TestimonialRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "is_published", Value: 1}, {Key: "is_featured", Value: 1}}},
		{Keys: bson.D{{Key: "display_order", Value: 1}}},
	})
	return err
}

func testimonialQuery(filter ports.ListTestimonialsFilter) bson.M {
	query := bson.M{}
	if filter.Published != nil {
		query["is_published"] = *filter.Published
	}
	if filter.Featured != nil {
		query["is_featured"] = *filter.Featured
	}
	return query
}
