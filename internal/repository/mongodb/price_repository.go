package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/akilima/akilima/internal/domain/apperr"
	"github.com/akilima/akilima/internal/domain/models"
)

// PriceRepository defines the persistence operations for market price records.
// Every read returns records newest-first by submission date.
type PriceRepository interface {
	FindAllSorted(ctx context.Context) ([]models.MarketPrice, error)
	FindByCrop(ctx context.Context, crop string, limit int64) ([]models.MarketPrice, error)
	Insert(ctx context.Context, price models.MarketPrice) (models.MarketPrice, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
}

// MongoPriceRepository implements PriceRepository on a MongoDB collection.
type MongoPriceRepository struct {
	coll *mongo.Collection
}

// NewPriceRepository binds the repository to the market_prices collection.
func NewPriceRepository(client *Client) *MongoPriceRepository {
	return &MongoPriceRepository{coll: client.Database().Collection("market_prices")}
}

// FindAllSorted returns every price record, newest-first.
func (r *MongoPriceRepository) FindAllSorted(ctx context.Context) ([]models.MarketPrice, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query price records: %w", err)
	}
	defer cur.Close(ctx)

	var prices []models.MarketPrice
	if err := cur.All(ctx, &prices); err != nil {
		return nil, fmt.Errorf("failed to decode price records: %w", err)
	}
	return prices, nil
}

// FindByCrop returns up to limit records for one crop, newest-first. The crop
// value is matched exactly; callers normalize casing before querying.
func (r *MongoPriceRepository) FindByCrop(ctx context.Context, crop string, limit int64) ([]models.MarketPrice, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}}).SetLimit(limit)
	cur, err := r.coll.Find(ctx, bson.M{"crop": crop}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query prices for %s: %w", crop, err)
	}
	defer cur.Close(ctx)

	var prices []models.MarketPrice
	if err := cur.All(ctx, &prices); err != nil {
		return nil, fmt.Errorf("failed to decode prices for %s: %w", crop, err)
	}
	return prices, nil
}

// Insert appends a new price record and returns it with its assigned identity.
func (r *MongoPriceRepository) Insert(ctx context.Context, price models.MarketPrice) (models.MarketPrice, error) {
	res, err := r.coll.InsertOne(ctx, price)
	if err != nil {
		return models.MarketPrice{}, fmt.Errorf("failed to insert price record: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		price.ID = oid
	}
	return price, nil
}

// DeleteByID removes exactly one record. Missing records surface as
// apperr.ErrNotFound.
func (r *MongoPriceRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete price record: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("price record %s: %w", id.Hex(), apperr.ErrNotFound)
	}
	return nil
}
