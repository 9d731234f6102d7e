package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cleancity/waste-collection-api/internal/core/domain"
)

const cleanersCollection = "cleaners"

type CleanerRepository struct {
	coll *mongo.Collection
}

func NewCleanerRepository(db *mongo.Database) *CleanerRepository {
	return &CleanerRepository{coll: db.Collection(cleanersCollection)}
}

type cleanerDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Name            string             `bson:"name"`
	Email           string             `bson:"email"`
	PasswordHash    string             `bson:"password_hash"`
	Phone           string             `bson:"phone"`
	VehicleNumber   string             `bson:"vehicle_number"`
	AssignedArea    string             `bson:"assigned_area"`
	Role            string             `bson:"role"`
	Status          string             `bson:"status"`
	CurrentLocation string             `bson:"current_location"`
	CreatedAt       time.Time          `bson:"created_at"`
}

func (d cleanerDoc) toDomain() *domain.Cleaner {
	return &domain.Cleaner{
		ID:              d.ID.Hex(),
		Name:            d.Name,
		Email:           d.Email,
		PasswordHash:    d.PasswordHash,
		Phone:           d.Phone,
		VehicleNumber:   d.VehicleNumber,
		AssignedArea:    d.AssignedArea,
		Role:            d.Role,
		Status:          domain.CleanerStatus(d.Status),
		CurrentLocation: d.CurrentLocation,
		CreatedAt:       d.CreatedAt,
	}
}

func (r *CleanerRepository) Create(ctx context.Context, cleaner *domain.Cleaner) (*domain.Cleaner, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := cleanerDoc{
		Name:            cleaner.Name,
		Email:           cleaner.Email,
		PasswordHash:    cleaner.PasswordHash,
		Phone:           cleaner.Phone,
		VehicleNumber:   cleaner.VehicleNumber,
		AssignedArea:    cleaner.AssignedArea,
		Role:            cleaner.Role,
		Status:          string(cleaner.Status),
		CurrentLocation: cleaner.CurrentLocation,
		CreatedAt:       cleaner.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// Two unique indexes back this collection; the offending one
			// is named in the server error.
			if strings.Contains(err.Error(), "vehicle_number") {
				return nil, domain.ErrVehicleExists
			}
			return nil, domain.ErrCleanerExists
		}
		return nil, fmt.Errorf("insert cleaner: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *CleanerRepository) FindByEmail(ctx context.Context, email string) (*domain.Cleaner, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *CleanerRepository) FindByVehicleNumber(ctx context.Context, vehicleNumber string) (*domain.Cleaner, error) {
	return r.findOne(ctx, bson.M{"vehicle_number": vehicleNumber})
}

func (r *CleanerRepository) FindByID(ctx context.Context, id string) (*domain.Cleaner, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCleanerNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *CleanerRepository) findOne(ctx context.Context, filter bson.M) (*domain.Cleaner, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc cleanerDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCleanerNotFound
		}
		return nil, fmt.Errorf("find cleaner: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *CleanerRepository) List(ctx context.Context) ([]*domain.Cleaner, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list cleaners: %w", err)
	}
	defer cur.Close(ctx)

	var cleaners []*domain.Cleaner
	for cur.Next(ctx) {
		var doc cleanerDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode cleaner: %w", err)
		}
		cleaners = append(cleaners, doc.toDomain())
	}
	return cleaners, cur.Err()
}

func (r *CleanerRepository) UpdateStatus(ctx context.Context, id string, status domain.CleanerStatus, location string) (*domain.Cleaner, error) {
	return r.update(ctx, id, bson.M{"status": string(status), "current_location": location})
}

func (r *CleanerRepository) UpdateArea(ctx context.Context, id, area string) (*domain.Cleaner, error) {
	return r.update(ctx, id, bson.M{"assigned_area": area})
}

func (r *CleanerRepository) update(ctx context.Context, id string, set bson.M) (*domain.Cleaner, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCleanerNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc cleanerDoc
	err = r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCleanerNotFound
		}
		return nil, fmt.Errorf("update cleaner: %w", err)
	}
	return doc.toDomain(), nil
}

// Delete removes a cleaner by id. Unknown and malformed ids succeed
// silently; delete is idempotent from the caller's perspective.
func (r *CleanerRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("delete cleaner: %w", err)
	}
	return nil
}

// EnsureIndexes creates the unique email and vehicle number indexes.
func (r *CleanerRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "vehicle_number", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
