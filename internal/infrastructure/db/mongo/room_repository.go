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
	"github.com/wimaserenity/gardens-api/internal/core/ports"
)

const collectionRooms = "rooms"

type RoomRepository struct {
	col *mongo.Collection
}

func NewRoomRepository(db *mongo.Database) *RoomRepository {
	return &RoomRepository{col: db.Collection(collectionRooms)}
}

type roomDoc struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	Name              string             `bson:"name"`
	Slug              string             `bson:"slug"`
	Type              string             `bson:"type"`
	Description       string             `bson:"description"`
	Capacity          int                `bson:"capacity"`
	PricePerNight     int                `bson:"price_per_night"`
	BreakfastIncluded bool               `bson:"breakfast_included"`
	Amenities         []string           `bson:"amenities"`
	Images            []string           `bson:"images"`
	IsFeatured        bool               `bson:"is_featured"`
	IsActive          bool               `bson:"is_active"`
	CreatedAt         time.Time          `bson:"created_at"`
	UpdatedAt         time.Time          `bson:"updated_at"`
}

func roomToDoc(room *domain.Room) roomDoc {
	return roomDoc{
		Name:              room.Name,
		Slug:              room.Slug,
		Type:              string(room.Type),
		Description:       room.Description,
		Capacity:          room.Capacity,
		PricePerNight:     room.PricePerNight,
		BreakfastIncluded: room.BreakfastIncluded,
		Amenities:         room.Amenities,
		Images:            room.Images,
		IsFeatured:        room.IsFeatured,
		IsActive:          room.IsActive,
		CreatedAt:         room.CreatedAt,
		UpdatedAt:         room.UpdatedAt,
	}
}

func (d *roomDoc) toDomain() *domain.Room {
	return &domain.Room{
		ID:                d.ID.Hex(),
		Name:              d.Name,
		Slug:              d.Slug,
		Type:              domain.RoomType(d.Type),
		Description:       d.Description,
		Capacity:          d.Capacity,
		PricePerNight:     d.PricePerNight,
		BreakfastIncluded: d.BreakfastIncluded,
		Amenities:         d.Amenities,
		Images:            d.Images,
		IsFeatured:        d.IsFeatured,
		IsActive:          d.IsActive,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, roomToDoc(room))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrRoomSlugExists
		}
		return nil, fmt.Errorf("insert room: %w", err)
	}

	created := *room
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *RoomRepository) FindByID(ctx context.Context, id string) (*domain.Room, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrRoomNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *RoomRepository) FindActiveBySlug(ctx context.Context, slug string) (*domain.Room, error) {
	return r.findOne(ctx, bson.M{"slug": slug, "is_active": true})
}

func (r *RoomRepository) findOne(ctx context.Context, filter bson.M) (*domain.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc roomDoc
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, fmt.Errorf("find room: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *RoomRepository) ListActive(ctx context.Context) ([]*domain.Room, error) {
	return r.list(ctx, bson.M{"is_active": true})
}

func (r *RoomRepository) ListFeatured(ctx context.Context) ([]*domain.Room, error) {
	return r.list(ctx, bson.M{"is_active": true, "is_featured": true})
}

func (r *RoomRepository) ListActiveByType(ctx context.Context, roomType domain.RoomType) ([]*domain.Room, error) {
	return r.list(ctx, bson.M{"is_active": true, "type": string(roomType)})
}

func (r *RoomRepository) ListAdmin(ctx context.Context, filter ports.RoomAdminFilter) ([]*domain.Room, error) {
	query := bson.M{}
	if !filter.IncludeInactive {
		query["is_active"] = true
	}
	if filter.Type != "" {
		query["type"] = filter.Type
	}
	return r.list(ctx, query)
}

func (r *RoomRepository) list(ctx context.Context, filter bson.M) ([]*domain.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer cur.Close(ctx)

	var rooms []*domain.Room
	for cur.Next(ctx) {
		var doc roomDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode room: %w", err)
		}
		rooms = append(rooms, doc.toDomain())
	}
	return rooms, cur.Err()
}

func (r *RoomRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"slug": slug}
	if excludeID != "" {
		if oid, err := primitive.ObjectIDFromHex(excludeID); err == nil {
			filter["_id"] = bson.M{"$ne": oid}
		}
	}

	n, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("count slug: %w", err)
	}
	return n > 0, nil
}

func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	oid, err := primitive.ObjectIDFromHex(room.ID)
	if err != nil {
		return nil, domain.ErrRoomNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := roomToDoc(room)
	doc.UpdatedAt = time.Now().UTC()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return nil, fmt.Errorf("update room: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrRoomNotFound
	}

	updated := *room
	updated.UpdatedAt = doc.UpdatedAt
	return &updated, nil
}

func (r *RoomRepository) CountActive(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.col.CountDocuments(ctx, bson.M{"is_active": true})
}

func (r *RoomRepository) CountFeatured(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.col.CountDocuments(ctx, bson.M{"is_active": true, "is_featured": true})
}

// EnsureIndexes creates the unique slug index and the listing indexes.
func (r *RoomRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "is_active", Value: 1}, {Key: "type", Value: 1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
