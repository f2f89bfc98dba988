package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Lokeshnegi69/story-board-interior-backend/internal/core/domain"
)

const collectionHeroSections = "hero_sections"

type HeroRepository struct {
	col *mongo.Collection
}

func NewHeroRepository(db *mongo.Database) *HeroRepository {
	return &HeroRepository{col: db.Collection(collectionHeroSections)}
}

func (r *HeroRepository) Create(ctx context.Context, h *domain.HeroSection) (*domain.HeroSection, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	h.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, h); err != nil {
		return nil, fmt.Errorf("insert hero section: %w", err)
	}
	return h, nil
}

func (r *HeroRepository) FindByID(ctx context.Context, id string) (*domain.HeroSection, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var h domain.HeroSection
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&h); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrHeroNotFound
		}
		return nil, fmt.Errorf("find hero section: %w", err)
	}
	return &h, nil
}

func (r *HeroRepository) Update(ctx context.Context, h *domain.HeroSection) (*domain.HeroSection, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": h.ID}, h)
	if err != nil {
		return nil, fmt.Errorf("update hero section: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrHeroNotFound
	}
	return h, nil
}

func (r *HeroRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete hero section: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrHeroNotFound
	}
	return nil
}

func (r *HeroRepository) List(ctx context.Context, activeOnly bool) ([]*domain.HeroSection, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if activeOnly {
		query["is_active"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "page", Value: 1}})
	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list hero sections: %w", err)
	}
	defer cur.Close(ctx)

	var sections []*domain.HeroSection
	if err := cur.All(ctx, &sections); err != nil {
		return nil, fmt.Errorf("decode hero sections: %w", err)
	}
	return sections, nil
}
