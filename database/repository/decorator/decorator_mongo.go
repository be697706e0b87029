package decoratorRepo

import (
	"context"
	"fmt"
	"time"

	"styledecor/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDecoratorRepo implements DecoratorRepository using MongoDB.
type MongoDecoratorRepo struct {
	coll *mongo.Collection
}

// NewMongoDecoratorRepo creates a new DecoratorRepository backed by the
// given database handle.
func NewMongoDecoratorRepo(db *mongo.Database) DecoratorRepository {
	repo := &MongoDecoratorRepo{coll: db.Collection("decorators")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create decorator indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoDecoratorRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "district", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new decorator document.
func (r *MongoDecoratorRepo) Create(d *models.Decorator) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	d.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, d)
	if err != nil {
		return fmt.Errorf("failed to create decorator: %w", err)
	}
	return nil
}

// GetByID retrieves a decorator by its unique ID. Returns (nil, nil) when no
// decorator exists.
func (r *MongoDecoratorRepo) GetByID(id string) (*models.Decorator, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var d models.Decorator
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&d); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch decorator with id %s: %w", id, err)
	}
	return &d, nil
}

// List filters decorators by approval status and district.
func (r *MongoDecoratorRepo) List(status models.ApprovalStatus, district string) ([]models.Decorator, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	if district != "" {
		filter["district"] = district
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list decorators: %w", err)
	}
	defer cursor.Close(ctx)

	var decorators []models.Decorator
	if err := cursor.All(ctx, &decorators); err != nil {
		return nil, fmt.Errorf("failed to decode decorators: %w", err)
	}
	return decorators, nil
}

// ListApprovedExcluding returns approved decorators not in the excluded
// email set.
func (r *MongoDecoratorRepo) ListApprovedExcluding(emails []string, district string) ([]models.Decorator, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if emails == nil {
		emails = []string{}
	}
	filter := bson.M{
		"status": models.ApprovalApproved,
		"email":  bson.M{"$nin": emails},
	}
	if district != "" {
		filter["district"] = district
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list available decorators: %w", err)
	}
	defer cursor.Close(ctx)

	var decorators []models.Decorator
	if err := cursor.All(ctx, &decorators); err != nil {
		return nil, fmt.Errorf("failed to decode available decorators: %w", err)
	}
	return decorators, nil
}

// SetDecision records an admin approval decision. The work status is reset
// to available alongside it.
func (r *MongoDecoratorRepo) SetDecision(id string, status models.ApprovalStatus) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"status":     status,
		"workStatus": models.WorkAvailable,
	}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update decorator with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("decorator with id %s not found", id)
	}
	return nil
}

// SetWorkStatusByEmail flips the cached availability flag for a decorator.
func (r *MongoDecoratorRepo) SetWorkStatusByEmail(email string, ws models.WorkStatus) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"workStatus": ws}}
	_, err := r.coll.UpdateOne(ctx, bson.M{"email": email}, update)
	if err != nil {
		return fmt.Errorf("failed to set work status for decorator %s: %w", email, err)
	}
	return nil
}

// Delete removes a decorator document by its ID.
func (r *MongoDecoratorRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete decorator with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("decorator with id %s not found", id)
	}
	return nil
}
