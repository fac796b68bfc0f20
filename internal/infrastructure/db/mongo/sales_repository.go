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

const collectionSales = "sales"

type SalesRepository struct {
	col *mongo.Collection
}

func NewSalesRepository(db *mongo.Database) *SalesRepository {
	return &SalesRepository{col: db.Collection(collectionSales)}
}

// Create inserts a new sale document. When the unique idempotency_key index
// rejects a concurrent duplicate, the sale that won the race is returned
// together with domain.ErrDuplicateSubmission.
func (r *SalesRepository) Create(ctx context.Context, s *domain.Sale) (*domain.Sale, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if s.ID == "" {
		s.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.col.InsertOne(ctx, s); err != nil {
		if mongo.IsDuplicateKeyError(err) && s.IdempotencyKey != "" {
			existing, lookupErr := r.FindByIdempotencyKey(ctx, s.IdempotencyKey)
			if lookupErr == nil {
				return existing, domain.ErrDuplicateSubmission
			}
		}
		return nil, err
	}
	return s, nil
}

// FindByID retrieves a sale by id.
func (r *SalesRepository) FindByID(ctx context.Context, id string) (*domain.Sale, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var s domain.Sale
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSaleNotFound
		}
		return nil, err
	}
	return &s, nil
}

// FindByIdempotencyKey retrieves an existing sale created with the given key.
func (r *SalesRepository) FindByIdempotencyKey(ctx context.Context, key string) (*domain.Sale, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var s domain.Sale
	err := r.col.FindOne(ctx, bson.M{"idempotency_key": key}).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSaleNotFound
		}
		return nil, err
	}
	return &s, nil
}

// List returns sales newest first.
func (r *SalesRepository) List(ctx context.Context, filter ports.ListSalesFilter) ([]*domain.Sale, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "sale_date", Value: -1}}).
		SetSkip(int64(filter.Skip)).
		SetLimit(int64(filter.Limit))

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	sales := make([]*domain.Sale, 0)
	if err := cur.All(ctx, &sales); err != nil {
		return nil, err
	}
	return sales, nil
}

// ListByDateRange returns sales with sale_date in [from, to), oldest first.
func (r *SalesRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]*domain.Sale, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{"sale_date": bson.M{"$gte": from, "$lt": to}}
	opts := options.Find().SetSort(bson.D{{Key: "sale_date", Value: 1}})

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	sales := make([]*domain.Sale, 0)
	if err := cur.All(ctx, &sales); err != nil {
		return nil, err
	}
	return sales, nil
}

// EnsureIndexes creates necessary indexes on the sales collection.
func (r *SalesRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "invoice_id", Value: 1}}},
		{Keys: bson.D{{Key: "sale_date", Value: -1}}},
		{
			// Unique so two racing submissions with the same key cannot both
			// insert; sparse because most sales carry no key at all.
			Keys:    bson.D{{Key: "idempotency_key", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
