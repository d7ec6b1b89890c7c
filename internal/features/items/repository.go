package items

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	defaultListLimit = 50
	maxListLimit     = 100
)

// Repository handles database interactions for items
type Repository struct {
	collection *mongo.Collection
}

// NewRepository initializes the repository and creates necessary indexes
func NewRepository(db *mongo.Database) *Repository {
	collection := db.Collection("items")

	_, _ = collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "type", Value: 1}, {Key: "createdAt", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "ownerId", Value: 1}},
		},
	})

	return &Repository{collection: collection}
}

// Create inserts a new item
func (r *Repository) Create(ctx context.Context, item *Item) error {
	item.CreatedAt = time.Now()
	if item.Labels == nil {
		item.Labels = []string{}
	}

	result, err := r.collection.InsertOne(ctx, item)
	if err != nil {
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		item.ID = oid
	}

	return nil
}

// GetByID fetches a single item; not found is not an error
func (r *Repository) GetByID(ctx context.Context, id string) (*Item, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid item id format")
	}

	var item Item
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// List returns items newest first, optionally filtered by type and location
func (r *Repository) List(ctx context.Context, itemType, location string, limit int) ([]Item, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	filter := bson.M{}
	if itemType != "" {
		filter["type"] = itemType
	}
	if location != "" {
		filter["location"] = bson.M{"$regex": location, "$options": "i"}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []Item{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CountByType returns how many items of the given type exist
func (r *Repository) CountByType(ctx context.Context, itemType string) (int64, error) {
	filter := bson.M{}
	if itemType != "" {
		filter["type"] = itemType
	}
	return r.collection.CountDocuments(ctx, filter)
}

// ListOppositeType returns all items of the opposite type, excluding the subject itself
func (r *Repository) ListOppositeType(ctx context.Context, itemType string, excludeID primitive.ObjectID) ([]Item, error) {
	opposite := "found"
	if itemType == "found" {
		opposite = "lost"
	}

	filter := bson.M{
		"type": opposite,
		"_id":  bson.M{"$ne": excludeID},
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []Item{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Delete removes an item if it belongs to the given owner. Returns the number
// of documents removed so the handler can distinguish missing from forbidden.
func (r *Repository) Delete(ctx context.Context, id, ownerID string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, errors.New("invalid item id format")
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid, "ownerId": ownerID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
