package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shopverse/storefront/internal/core/domain"
	"github.com/shopverse/storefront/internal/core/ports"
)

const (
	collectionProducts = "products"
	createRetries      = 3
)

// productDocument stores a product with its catalog position. Lower ranks
// list first; new products take a rank below the current minimum.
type productDocument struct {
	domain.Product `bson:",inline"`
	Rank           int `bson:"rank"`
}

type CatalogRepository struct {
	col *mongo.Collection
}

var _ ports.CatalogRepository = (*CatalogRepository)(nil)

func NewCatalogRepository(db *mongo.Database) *CatalogRepository {
	return &CatalogRepository{col: db.Collection(collectionProducts)}
}

// List returns every product in catalog order.
func (r *CatalogRepository) List(ctx context.Context) ([]domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "rank", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	var docs []productDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}

	out := make([]domain.Product, len(docs))
	for i, d := range docs {
		out[i] = d.Product
	}
	return out, nil
}

// Get retrieves a product by id.
func (r *CatalogRepository) Get(ctx context.Context, id int) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d productDocument
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return &d.Product, nil
}

// Create assigns the next id and inserts p ahead of every other product. A
// concurrent insert taking the same id is retried.
func (r *CatalogRepository) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var lastErr error
	for range createRetries {
		maxID, err := r.edge(ctx, "_id", -1)
		if err != nil {
			return nil, err
		}
		minRank, err := r.edge(ctx, "rank", 1)
		if err != nil {
			return nil, err
		}

		p.ID = maxID.ID + 1
		_, err = r.col.InsertOne(ctx, productDocument{Product: p, Rank: minRank.Rank - 1})
		if err == nil {
			return &p, nil
		}
		if !mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("insert product: %w", err)
		}
		lastErr = err
	}
	return nil, fmt.Errorf("insert product: %w", lastErr)
}

// edge returns the first document sorted by field in direction dir, or a zero
// document when the collection is empty.
func (r *CatalogRepository) edge(ctx context.Context, field string, dir int) (productDocument, error) {
	var d productDocument
	err := r.col.FindOne(ctx, bson.M{}, options.FindOne().SetSort(bson.D{{Key: field, Value: dir}})).Decode(&d)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return d, fmt.Errorf("find %s edge: %w", field, err)
	}
	return d, nil
}

// Update replaces the product, keeping its catalog position.
func (r *CatalogRepository) Update(ctx context.Context, p domain.Product) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var current productDocument
	err := r.col.FindOne(ctx, bson.M{"_id": p.ID}, options.FindOne().SetProjection(bson.M{"rank": 1})).Decode(&current)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.ErrProductNotFound
		}
		return fmt.Errorf("find product: %w", err)
	}

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": p.ID}, productDocument{Product: p, Rank: current.Rank})
	if err != nil {
		return fmt.Errorf("replace product: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *CatalogRepository) Delete(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// EnsureSeed loads products into an empty collection, preserving their order.
// It reports whether anything was inserted.
func (r *CatalogRepository) EnsureSeed(ctx context.Context, products []domain.Product) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	n, err := r.col.EstimatedDocumentCount(ctx)
	if err != nil {
		return false, fmt.Errorf("count products: %w", err)
	}
	if n > 0 || len(products) == 0 {
		return false, nil
	}

	docs := make([]interface{}, len(products))
	for i, p := range products {
		docs[i] = productDocument{Product: p, Rank: i}
	}
	if _, err := r.col.InsertMany(ctx, docs); err != nil {
		return false, fmt.Errorf("seed products: %w", err)
	}
	return true, nil
}

// EnsureIndexes creates necessary indexes on the products collection.
func (r *CatalogRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "rank", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
