package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/itops/asset-tracker/internal/core/domain"
)

const assetsCollection = "assets"

type AssetRepository struct {
	coll *mongo.Collection
}

func NewAssetRepository(db *mongo.Database) *AssetRepository {
	return &AssetRepository{coll: db.Collection(assetsCollection)}
}

type mongoAsset struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Category       string             `bson:"category"`
	Comments       string             `bson:"comments,omitempty"`
	UserID         string             `bson:"user_id"`
	CustomerID     string             `bson:"customer_id,omitempty"`
	ManufacturerID string             `bson:"manufacturer_id,omitempty"`
	CreatedAt      int64              `bson:"created_at"`
}

func (r *AssetRepository) Create(ctx context.Context, asset *domain.Asset) (*domain.Asset, error) {
	doc := mongoAsset{
		Category:       asset.Category,
		Comments:       asset.Comments,
		UserID:         asset.UserID,
		CustomerID:     asset.CustomerID,
		ManufacturerID: asset.ManufacturerID,
		CreatedAt:      asset.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert asset: %w", err)
	}

	created := *asset
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *AssetRepository) FindByID(ctx context.Context, id string) (*domain.Asset, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	var ma mongoAsset
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ma); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find asset: %w", err)
	}
	return ma.toDomain(), nil
}

func (r *AssetRepository) List(ctx context.Context) ([]*domain.Asset, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Asset
	for cur.Next(ctx) {
		var ma mongoAsset
		if err := cur.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode asset: %w", err)
		}
		out = append(out, ma.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate assets: %w", err)
	}
	return out, nil
}

func (r *AssetRepository) Update(ctx context.Context, asset *domain.Asset) error {
	oid, err := primitive.ObjectIDFromHex(asset.ID)
	if err != nil {
		return domain.ErrNotFound
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"category":        asset.Category,
		"comments":        asset.Comments,
		"customer_id":     asset.CustomerID,
		"manufacturer_id": asset.ManufacturerID,
	}})
	if err != nil {
		return fmt.Errorf("update asset: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *AssetRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete asset: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (ma mongoAsset) toDomain() *domain.Asset {
	return &domain.Asset{
		ID:             ma.ID.Hex(),
		Category:       ma.Category,
		Comments:       ma.Comments,
		UserID:         ma.UserID,
		CustomerID:     ma.CustomerID,
		ManufacturerID: ma.ManufacturerID,
		CreatedAt:      unixToTime(ma.CreatedAt),
	}
}
