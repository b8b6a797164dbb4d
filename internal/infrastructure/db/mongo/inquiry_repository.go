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

const collectionInquiries = "inquiries"

type InquiryRepository struct {
	col *mongo.Collection
}

func NewInquiryRepository(db *mongo.Database) *InquiryRepository {
	return &InquiryRepository{col: db.Collection(collectionInquiries)}
}

type roomRefDoc struct {
	ID   string `bson:"id"`
	Name string `bson:"name"`
	Slug string `bson:"slug"`
	Type string `bson:"type"`
}

type inquiryDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Email       string             `bson:"email"`
	Phone       string             `bson:"phone"`
	InquiryType string             `bson:"inquiry_type"`
	RoomID      string             `bson:"room_id,omitempty"`
	Room        *roomRefDoc        `bson:"room,omitempty"`
	CheckIn     *time.Time         `bson:"check_in,omitempty"`
	CheckOut    *time.Time         `bson:"check_out,omitempty"`
	Guests      int                `bson:"guests,omitempty"`
	Message     string             `bson:"message"`
	Status      string             `bson:"status"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func inquiryToDoc(inq *domain.Inquiry) inquiryDoc {
	doc := inquiryDoc{
		Name:        inq.Name,
		Email:       inq.Email,
		Phone:       inq.Phone,
		InquiryType: string(inq.InquiryType),
		RoomID:      inq.RoomID,
		CheckIn:     inq.CheckIn,
		CheckOut:    inq.CheckOut,
		Guests:      inq.Guests,
		Message:     inq.Message,
		Status:      string(inq.Status),
		CreatedAt:   inq.CreatedAt,
		UpdatedAt:   inq.UpdatedAt,
	}
	if inq.Room != nil {
		doc.Room = &roomRefDoc{
			ID:   inq.Room.ID,
			Name: inq.Room.Name,
			Slug: inq.Room.Slug,
			Type: string(inq.Room.Type),
		}
	}
	return doc
}

func (d *inquiryDoc) toDomain() *domain.Inquiry {
	inq := &domain.Inquiry{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Email:       d.Email,
		Phone:       d.Phone,
		InquiryType: domain.InquiryType(d.InquiryType),
		RoomID:      d.RoomID,
		CheckIn:     d.CheckIn,
		CheckOut:    d.CheckOut,
		Guests:      d.Guests,
		Message:     d.Message,
		Status:      domain.InquiryStatus(d.Status),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
	if d.Room != nil {
		inq.Room = &domain.RoomRef{
			ID:   d.Room.ID,
			Name: d.Room.Name,
			Slug: d.Room.Slug,
			Type: domain.RoomType(d.Room.Type),
		}
	}
	return inq
}

func (r *InquiryRepository) Create(ctx context.Context, inq *domain.Inquiry) (*domain.Inquiry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, inquiryToDoc(inq))
	if err != nil {
		return nil, fmt.Errorf("insert inquiry: %w", err)
	}

	created := *inq
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *InquiryRepository) FindByID(ctx context.Context, id string) (*domain.Inquiry, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInquiryNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc inquiryDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrInquiryNotFound
		}
		return nil, fmt.Errorf("find inquiry: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *InquiryRepository) List(ctx context.Context, filter ports.InquiryFilter) ([]*domain.Inquiry, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Type != "" {
		query["inquiry_type"] = filter.Type
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count inquiries: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(filter.Offset)).
		SetLimit(int64(filter.Limit))

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list inquiries: %w", err)
	}
	defer cur.Close(ctx)

	var inquiries []*domain.Inquiry
	for cur.Next(ctx) {
		var doc inquiryDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode inquiry: %w", err)
		}
		inquiries = append(inquiries, doc.toDomain())
	}
	return inquiries, total, cur.Err()
}

func (r *InquiryRepository) UpdateStatus(ctx context.Context, id string, status domain.InquiryStatus) (*domain.Inquiry, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInquiryNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"status":     string(status),
		"updated_at": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc inquiryDoc
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrInquiryNotFound
		}
		return nil, fmt.Errorf("update inquiry status: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *InquiryRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.col.CountDocuments(ctx, bson.M{})
}

func (r *InquiryRepository) CountByStatus(ctx context.Context, status domain.InquiryStatus) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.col.CountDocuments(ctx, bson.M{"status": string(status)})
}

func (r *InquiryRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.col.CountDocuments(ctx, bson.M{"created_at": bson.M{"$gte": since}})
}

// EnsureIndexes creates the triage listing indexes.
func (r *InquiryRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
