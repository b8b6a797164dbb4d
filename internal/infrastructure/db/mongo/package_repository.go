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

	"github.com/wimaserenity/gardens-api/internal/core/domain"
)

const collectionPackages = "packages"

type PackageRepository struct {
	col *mongo.Collection
}

func NewPackageRepository(db *mongo.Database) *PackageRepository {
	return &PackageRepository{col: db.Collection(collectionPackages)}
}

type packageDoc struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	Name              string             `bson:"name"`
	Slug              string             `bson:"slug"`
	Tagline           string             `bson:"tagline,omitempty"`
	ShortDescription  string             `bson:"short_description"`
	LongDescription   string             `bson:"long_description,omitempty"`
	PricePerNight     int                `bson:"price_per_night"`
	OriginalPrice     int                `bson:"original_price,omitempty"`
	RoomsIncluded     []string           `bson:"rooms_included"`
	Capacity          int                `bson:"capacity"`
	BreakfastIncluded bool               `bson:"breakfast_included"`
	Amenities         []string           `bson:"amenities"`
	Benefits          []string           `bson:"benefits"`
	Images            []string           `bson:"images"`
	IsFeatured        bool               `bson:"is_featured"`
	IsActive          bool               `bson:"is_active"`
	CreatedAt         time.Time          `bson:"created_at"`
	UpdatedAt         time.Time          `bson:"updated_at"`
}

func (d *packageDoc) toDomain() *domain.Package {
	return &domain.Package{
		ID:                d.ID.Hex(),
		Name:              d.Name,
		Slug:              d.Slug,
		Tagline:           d.Tagline,
		ShortDescription:  d.ShortDescription,
		LongDescription:   d.LongDescription,
		PricePerNight:     d.PricePerNight,
		OriginalPrice:     d.OriginalPrice,
		RoomsIncluded:     d.RoomsIncluded,
		Capacity:          d.Capacity,
		BreakfastIncluded: d.BreakfastIncluded,
		Amenities:         d.Amenities,
		Benefits:          d.Benefits,
		Images:            d.Images,
		IsFeatured:        d.IsFeatured,
		IsActive:          d.IsActive,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}

func (r *PackageRepository) ListActive(ctx context.Context) ([]*domain.Package, error) {
	return r.list(ctx, bson.M{"is_active": true})
}

func (r *PackageRepository) ListFeatured(ctx context.Context) ([]*domain.Package, error) {
	return r.list(ctx, bson.M{"is_active": true, "is_featured": true})
}

func (r *PackageRepository) FindActiveBySlug(ctx context.Context, slug string) (*domain.Package, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc packageDoc
	if err := r.col.FindOne(ctx, bson.M{"slug": slug, "is_active": true}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPackageNotFound
		}
		return nil, fmt.Errorf("find package: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *PackageRepository) list(ctx context.Context, filter bson.M) ([]*domain.Package, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}
	defer cur.Close(ctx)

	var packages []*domain.Package
	for cur.Next(ctx) {
		var doc packageDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode package: %w", err)
		}
		packages = append(packages, doc.toDomain())
	}
	return packages, cur.Err()
}

// EnsureIndexes creates the unique slug index.
func (r *PackageRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
