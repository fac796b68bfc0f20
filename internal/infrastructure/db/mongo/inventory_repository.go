package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tireshop/pos-system/internal/core/domain"
	"github.com/tireshop/pos-system/internal/core/ports"
)

const collectionTires = "tires"

type InventoryRepository struct {
	col *mongo.Collection
}

func NewInventoryRepository(db *mongo.Database) *InventoryRepository {
	return &InventoryRepository{col: db.Collection(collectionTires)}
}

// Create inserts a new stock line.
func (r *InventoryRepository) Create(ctx context.Context, t *domain.Tire) (*domain.Tire, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if t.ID == "" {
		t.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.col.InsertOne(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// FindByID retrieves a stock line by id.
func (r *InventoryRepository) FindByID(ctx context.Context, id string) (*domain.Tire, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var t domain.Tire
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&t)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTireNotFound
		}
		return nil, err
	}
	return &t, nil
}

// List returns stock lines matching the filter, newest purchase first.
// A non-empty search term matches brand or tire_size case-insensitively.
func (r *InventoryRepository) List(ctx context.Context, filter ports.ListTiresFilter) ([]*domain.Tire, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Search != "" {
		query["$or"] = bson.A{
			bson.M{"brand": bson.M{"$regex": filter.Search, "$options": "i"}},
			bson.M{"tire_size": bson.M{"$regex": filter.Search, "$options": "i"}},
		}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "purchase_date", Value: -1}}).
		SetSkip(int64(filter.Skip)).
		SetLimit(int64(filter.Limit))

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	tires := make([]*domain.Tire, 0)
	if err := cur.All(ctx, &tires); err != nil {
		return nil, err
	}
	return tires, nil
}

// Update applies the non-nil fields of update and returns the new document.
func (r *InventoryRepository) Update(ctx context.Context, id string, update ports.TireUpdate) (*domain.Tire, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{}
	if update.Brand != nil {
		set["brand"] = *update.Brand
	}
	if update.TireSize != nil {
		set["tire_size"] = *update.TireSize
	}
	if update.TireType != nil {
		set["tire_type"] = *update.TireType
	}
	if update.Quantity != nil {
		set["quantity"] = *update.Quantity
	}
	if update.PurchasePrice != nil {
		set["purchase_price"] = *update.PurchasePrice
	}
	if update.SellingPrice != nil {
		set["selling_price"] = *update.SellingPrice
	}
	if update.SupplierName != nil {
		set["supplier_name"] = *update.SupplierName
	}
	if update.PurchaseDate != nil {
		set["purchase_date"] = *update.PurchaseDate
	}
	if len(set) == 0 {
		return r.FindByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var t domain.Tire
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&t)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTireNotFound
		}
		return nil, err
	}
	return &t, nil
}

// Delete removes a stock line.
func (r *InventoryRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrTireNotFound
	}
	return nil
}

// AdjustQuantity atomically adds delta to the stock count. For negative
// deltas the filter requires enough stock, so a concurrent sale can never
// drive the count below zero.
func (r *InventoryRepository) AdjustQuantity(ctx context.Context, id string, delta int) (*domain.Tire, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": id}
	if delta < 0 {
		filter["quantity"] = bson.M{"$gte": -delta}
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var t domain.Tire
	err := r.col.FindOneAndUpdate(ctx, filter, bson.M{"$inc": bson.M{"quantity": delta}}, opts).Decode(&t)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// Distinguish a missing document from a failed stock guard.
			if _, findErr := r.FindByID(ctx, id); findErr != nil {
				return nil, findErr
			}
			return nil, domain.ErrInsufficientStock
		}
		return nil, err
	}
	return &t, nil
}

// ListLowStock returns stock lines with quantity strictly below threshold.
func (r *InventoryRepository) ListLowStock(ctx context.Context, threshold int) ([]*domain.Tire, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "quantity", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{"quantity": bson.M{"$lt": threshold}}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	tires := make([]*domain.Tire, 0)
	if err := cur.All(ctx, &tires); err != nil {
		return nil, err
	}
	return tires, nil
}

// EnsureIndexes creates necessary indexes on the tires collection.
func (r *InventoryRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "brand", Value: 1}}},
		{Keys: bson.D{{Key: "quantity", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
