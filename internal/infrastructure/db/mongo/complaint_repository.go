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

	"github.com/cleancity/waste-collection-api/internal/core/domain"
	"github.com/cleancity/waste-collection-api/internal/core/ports"
)

const complaintsCollection = "complaints"

type ComplaintRepository struct {
	coll *mongo.Collection
}

func NewComplaintRepository(db *mongo.Database) *ComplaintRepository {
	return &ComplaintRepository{coll: db.Collection(complaintsCollection)}
}

type complaintDoc struct {
	ID              primitive.ObjectID  `bson:"_id,omitempty"`
	UserID          primitive.ObjectID  `bson:"user_id"`
	UserEmail       string              `bson:"user_email"`
	UserName        string              `bson:"user_name"`
	Area            string              `bson:"area"`
	Description     string              `bson:"description"`
	Status          string              `bson:"status"`
	AssignedCleaner *primitive.ObjectID `bson:"assigned_cleaner"`
	CleanerName     string              `bson:"cleaner_name"`
	CleanerPhone    string              `bson:"cleaner_phone"`
	ExpectedArrival string              `bson:"expected_arrival"`
	CollectionDate  *time.Time          `bson:"collection_date"`
	CreatedAt       time.Time           `bson:"created_at"`
}

func (d complaintDoc) toDomain() *domain.Complaint {
	c := &domain.Complaint{
		ID:              d.ID.Hex(),
		UserID:          d.UserID.Hex(),
		UserEmail:       d.UserEmail,
		UserName:        d.UserName,
		Area:            d.Area,
		Description:     d.Description,
		Status:          domain.ComplaintStatus(d.Status),
		CleanerName:     d.CleanerName,
		CleanerPhone:    d.CleanerPhone,
		ExpectedArrival: d.ExpectedArrival,
		CollectionDate:  d.CollectionDate,
		CreatedAt:       d.CreatedAt,
	}
	if d.AssignedCleaner != nil {
		c.AssignedCleaner = d.AssignedCleaner.Hex()
	}
	return c
}

func (r *ComplaintRepository) Create(ctx context.Context, complaint *domain.Complaint) (*domain.Complaint, error) {
	userOID, err := primitive.ObjectIDFromHex(complaint.UserID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := complaintDoc{
		UserID:      userOID,
		UserEmail:   complaint.UserEmail,
		UserName:    complaint.UserName,
		Area:        complaint.Area,
		Description: complaint.Description,
		Status:      string(complaint.Status),
		CreatedAt:   complaint.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert complaint: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *ComplaintRepository) FindByID(ctx context.Context, id string) (*domain.Complaint, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrComplaintNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc complaintDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrComplaintNotFound
		}
		return nil, fmt.Errorf("find complaint: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ComplaintRepository) FindByUser(ctx context.Context, userID string) ([]*domain.Complaint, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	return r.find(ctx, bson.M{"user_id": oid})
}

// FindByAreaOrAssignee returns the union: all complaints in the area plus
// any complaint ever assigned to the cleaner. A single $or query, so
// there are no duplicates by construction.
func (r *ComplaintRepository) FindByAreaOrAssignee(ctx context.Context, area, cleanerID string) ([]*domain.Complaint, error) {
	oid, err := primitive.ObjectIDFromHex(cleanerID)
	if err != nil {
		return nil, domain.ErrCleanerNotFound
	}
	return r.find(ctx, bson.M{"$or": bson.A{
		bson.M{"area": area},
		bson.M{"assigned_cleaner": oid},
	}})
}

func (r *ComplaintRepository) FindAll(ctx context.Context) ([]*domain.Complaint, error) {
	return r.find(ctx, bson.M{})
}

func (r *ComplaintRepository) find(ctx context.Context, filter bson.M) ([]*domain.Complaint, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("find complaints: %w", err)
	}
	defer cur.Close(ctx)

	var complaints []*domain.Complaint
	for cur.Next(ctx) {
		var doc complaintDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode complaint: %w", err)
		}
		complaints = append(complaints, doc.toDomain())
	}
	return complaints, cur.Err()
}

// Assign overwrites the assignment fields and moves the complaint to
// assigned in a single document write. Concurrent assigns race and the
// last write wins; that is the accepted model here.
func (r *ComplaintRepository) Assign(ctx context.Context, id string, update ports.AssignmentUpdate) (*domain.Complaint, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrComplaintNotFound
	}
	cleanerOID, err := primitive.ObjectIDFromHex(update.CleanerID)
	if err != nil {
		return nil, domain.ErrCleanerNotFound
	}

	return r.findOneAndSet(ctx, oid, bson.M{
		"assigned_cleaner": cleanerOID,
		"cleaner_name":     update.CleanerName,
		"cleaner_phone":    update.CleanerPhone,
		"expected_arrival": update.ExpectedArrival,
		"status":           string(domain.ComplaintAssigned),
	})
}

func (r *ComplaintRepository) UpdateStatus(ctx context.Context, id string, status domain.ComplaintStatus, collectionDate *time.Time) (*domain.Complaint, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrComplaintNotFound
	}

	return r.findOneAndSet(ctx, oid, bson.M{
		"status":          string(status),
		"collection_date": collectionDate,
	})
}

func (r *ComplaintRepository) findOneAndSet(ctx context.Context, oid primitive.ObjectID, set bson.M) (*domain.Complaint, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc complaintDoc
	err := r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrComplaintNotFound
		}
		return nil, fmt.Errorf("update complaint: %w", err)
	}
	return doc.toDomain(), nil
}

// CountByStatus groups complaints by status in a single aggregation.
func (r *ComplaintRepository) CountByStatus(ctx context.Context) (map[domain.ComplaintStatus]int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$status"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("count complaints: %w", err)
	}
	defer cur.Close(ctx)

	counts := make(map[domain.ComplaintStatus]int64)
	for cur.Next(ctx) {
		var row struct {
			Status string `bson:"_id"`
			Count  int64  `bson:"count"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, fmt.Errorf("decode count: %w", err)
		}
		counts[domain.ComplaintStatus(row.Status)] = row.Count
	}
	return counts, cur.Err()
}

// EnsureIndexes creates the query-supporting indexes on complaints.
func (r *ComplaintRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "area", Value: 1}}},
		{Keys: bson.D{{Key: "assigned_cleaner", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
