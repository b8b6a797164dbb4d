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

const collectionEventInquiries = "event_inquiries"

type EventInquiryRepository struct {
	col *mongo.Collection
}

func NewEventInquiryRepository(db *mongo.Database) *EventInquiryRepository {
	return &EventInquiryRepository{col: db.Collection(collectionEventInquiries)}
}

type eventInquiryDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Name            string             `bson:"name"`
	Email           string             `bson:"email"`
	Phone           string             `bson:"phone"`
	EventType       string             `bson:"event_type"`
	EventDate       time.Time          `bson:"event_date"`
	GuestCount      int                `bson:"guest_count"`
	VenuePreference string             `bson:"venue_preference,omitempty"`
	Message         string             `bson:"message"`
	Status          string             `bson:"status"`
	CreatedAt       time.Time          `bson:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at"`
}

func eventInquiryToDoc(inq *domain.EventInquiry) eventInquiryDoc {
	return eventInquiryDoc{
		Name:            inq.Name,
		Email:           inq.Email,
		Phone:           inq.Phone,
		EventType:       string(inq.EventType),
		EventDate:       inq.EventDate,
		GuestCount:      inq.GuestCount,
		VenuePreference: inq.VenuePreference,
		Message:         inq.Message,
		Status:          string(inq.Status),
		CreatedAt:       inq.CreatedAt,
		UpdatedAt:       inq.UpdatedAt,
	}
}

func (d *eventInquiryDoc) toDomain() *domain.EventInquiry {
	return &domain.EventInquiry{
		ID:              d.ID.Hex(),
		Name:            d.Name,
		Email:           d.Email,
		Phone:           d.Phone,
		EventType:       domain.EventType(d.EventType),
		EventDate:       d.EventDate,
		GuestCount:      d.GuestCount,
		VenuePreference: d.VenuePreference,
		Message:         d.Message,
		Status:          domain.InquiryStatus(d.Status),
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

func (r *EventInquiryRepository) Create(ctx context.Context, inq *domain.EventInquiry) (*domain.EventInquiry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, eventInquiryToDoc(inq))
	if err != nil {
		return nil, fmt.Errorf("insert event inquiry: %w", err)
	}

	created := *inq
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *EventInquiryRepository) FindByID(ctx context.Context, id string) (*domain.EventInquiry, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrEventInquiryNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc eventInquiryDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEventInquiryNotFound
		}
		return nil, fmt.Errorf("find event inquiry: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *EventInquiryRepository) List(ctx context.Context, filter ports.EventInquiryFilter) ([]*domain.EventInquiry, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.EventType != "" {
		query["event_type"] = filter.EventType
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count event inquiries: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(filter.Offset)).
		SetLimit(int64(filter.Limit))

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list event inquiries: %w", err)
	}
	defer cur.Close(ctx)

	var inquiries []*domain.EventInquiry
	for cur.Next(ctx) {
		var doc eventInquiryDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode event inquiry: %w", err)
		}
		inquiries = append(inquiries, doc.toDomain())
	}
	return inquiries, total, cur.Err()
}

func (r *EventInquiryRepository) UpdateStatus(ctx context.Context, id string, status domain.InquiryStatus) (*domain.EventInquiry, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrEventInquiryNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"status":     string(status),
		"updated_at": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc eventInquiryDoc
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEventInquiryNotFound
		}
		return nil, fmt.Errorf("update event inquiry status: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *EventInquiryRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.col.CountDocuments(ctx, bson.M{})
}

func (r *EventInquiryRepository) CountByStatus(ctx context.Context, status domain.InquiryStatus) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.col.CountDocuments(ctx, bson.M{"status": string(status)})
}

func (r *EventInquiryRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.col.CountDocuments(ctx, bson.M{"created_at": bson.M{"$gte": since}})
}

// EnsureIndexes creates the triage listing indexes.
func (r *EventInquiryRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "event_date", Value: 1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
