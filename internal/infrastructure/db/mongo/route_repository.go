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
)

const routesCollection = "routes"

type RouteRepository struct {
	coll *mongo.Collection
}

func NewRouteRepository(db *mongo.Database) *RouteRepository {
	return &RouteRepository{coll: db.Collection(routesCollection)}
}

type routeDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	CleanerID   primitive.ObjectID `bson:"cleaner_id"`
	CleanerName string             `bson:"cleaner_name"`
	Area        string             `bson:"area"`
	Date        time.Time          `bson:"date"`
	StartTime   string             `bson:"start_time"`
	EndTime     string             `bson:"end_time"`
	Description string             `bson:"description"`
	Status      string             `bson:"status"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func (d routeDoc) toDomain() *domain.Route {
	return &domain.Route{
		ID:          d.ID.Hex(),
		CleanerID:   d.CleanerID.Hex(),
		CleanerName: d.CleanerName,
		Area:        d.Area,
		Date:        d.Date,
		StartTime:   d.StartTime,
		EndTime:     d.EndTime,
		Description: d.Description,
		Status:      domain.RouteStatus(d.Status),
		CreatedAt:   d.CreatedAt,
	}
}

func (r *RouteRepository) Create(ctx context.Context, route *domain.Route) (*domain.Route, error) {
	cleanerOID, err := primitive.ObjectIDFromHex(route.CleanerID)
	if err != nil {
		return nil, domain.ErrCleanerNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := routeDoc{
		CleanerID:   cleanerOID,
		CleanerName: route.CleanerName,
		Area:        route.Area,
		Date:        route.Date,
		StartTime:   route.StartTime,
		EndTime:     route.EndTime,
		Description: route.Description,
		Status:      string(route.Status),
		CreatedAt:   route.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert route: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *RouteRepository) FindByID(ctx context.Context, id string) (*domain.Route, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrRouteNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc routeDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRouteNotFound
		}
		return nil, fmt.Errorf("find route: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *RouteRepository) FindByCleaner(ctx context.Context, cleanerID string) ([]*domain.Route, error) {
	oid, err := primitive.ObjectIDFromHex(cleanerID)
	if err != nil {
		return nil, domain.ErrCleanerNotFound
	}
	return r.find(ctx, bson.M{"cleaner_id": oid})
}

func (r *RouteRepository) FindAll(ctx context.Context) ([]*domain.Route, error) {
	return r.find(ctx, bson.M{})
}

func (r *RouteRepository) find(ctx context.Context, filter bson.M) ([]*domain.Route, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("find routes: %w", err)
	}
	defer cur.Close(ctx)

	var routes []*domain.Route
	for cur.Next(ctx) {
		var doc routeDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode route: %w", err)
		}
		routes = append(routes, doc.toDomain())
	}
	return routes, cur.Err()
}

func (r *RouteRepository) UpdateStatus(ctx context.Context, id string, status domain.RouteStatus) (*domain.Route, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrRouteNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc routeDoc
	err = r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"status": string(status)}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRouteNotFound
		}
		return nil, fmt.Errorf("update route: %w", err)
	}
	return doc.toDomain(), nil
}

// Delete removes a route by id. Unknown and malformed ids succeed
// silently.
func (r *RouteRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("delete route: %w", err)
	}
	return nil
}

// EnsureIndexes creates the cleaner lookup index on routes.
func (r *RouteRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "cleaner_id", Value: 1}, {Key: "date", Value: -1}},
	})
	return err
}
