package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/itops/asset-tracker/internal/core/domain"
)

const (
	customersCollection     = "customers"
	manufacturersCollection = "manufacturers"
)

// namedDoc covers both catalog collections; customers and manufacturers are
// plain {_id, name} records.
type namedDoc struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Name string             `bson:"name"`
}

type CustomerRepository struct {
	coll *mongo.Collection
}

func NewCustomerRepository(db *mongo.Database) *CustomerRepository {
	return &CustomerRepository{coll: db.Collection(customersCollection)}
}

func (r *CustomerRepository) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	id, err := insertNamed(ctx, r.coll, customer.Name)
	if err != nil {
		return nil, fmt.Errorf("insert customer: %w", err)
	}
	return &domain.Customer{ID: id, Name: customer.Name}, nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id string) (*domain.Customer, error) {
	doc, err := findNamed(ctx, r.coll, id)
	if err != nil {
		return nil, err
	}
	return &domain.Customer{ID: doc.ID.Hex(), Name: doc.Name}, nil
}

func (r *CustomerRepository) List(ctx context.Context) ([]*domain.Customer, error) {
	docs, err := listNamed(ctx, r.coll)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Customer, 0, len(docs))
	for _, d := range docs {
		out = append(out, &domain.Customer{ID: d.ID.Hex(), Name: d.Name})
	}
	return out, nil
}

func (r *CustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	return updateNamed(ctx, r.coll, customer.ID, customer.Name)
}

func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	return deleteNamed(ctx, r.coll, id)
}

type ManufacturerRepository struct {
	coll *mongo.Collection
}

func NewManufacturerRepository(db *mongo.Database) *ManufacturerRepository {
	return &ManufacturerRepository{coll: db.Collection(manufacturersCollection)}
}

func (r *ManufacturerRepository) Create(ctx context.Context, manufacturer *domain.Manufacturer) (*domain.Manufacturer, error) {
	id, err := insertNamed(ctx, r.coll, manufacturer.Name)
	if err != nil {
		return nil, fmt.Errorf("insert manufacturer: %w", err)
	}
	return &domain.Manufacturer{ID: id, Name: manufacturer.Name}, nil
}

func (r *ManufacturerRepository) FindByID(ctx context.Context, id string) (*domain.Manufacturer, error) {
	doc, err := findNamed(ctx, r.coll, id)
	if err != nil {
		return nil, err
	}
	return &domain.Manufacturer{ID: doc.ID.Hex(), Name: doc.Name}, nil
}

func (r *ManufacturerRepository) List(ctx context.Context) ([]*domain.Manufacturer, error) {
	docs, err := listNamed(ctx, r.coll)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Manufacturer, 0, len(docs))
	for _, d := range docs {
		out = append(out, &domain.Manufacturer{ID: d.ID.Hex(), Name: d.Name})
	}
	return out, nil
}

func (r *ManufacturerRepository) Update(ctx context.Context, manufacturer *domain.Manufacturer) error {
	return updateNamed(ctx, r.coll, manufacturer.ID, manufacturer.Name)
}

func (r *ManufacturerRepository) Delete(ctx context.Context, id string) error {
	return deleteNamed(ctx, r.coll, id)
}

func insertNamed(ctx context.Context, coll *mongo.Collection, name string) (string, error) {
	res, err := coll.InsertOne(ctx, namedDoc{Name: name})
	if err != nil {
		return "", err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return "", nil
}

func findNamed(ctx context.Context, coll *mongo.Collection, id string) (*namedDoc, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	var doc namedDoc
	if err := coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find %s: %w", coll.Name(), err)
	}
	return &doc, nil
}

func listNamed(ctx context.Context, coll *mongo.Collection) ([]namedDoc, error) {
	cur, err := coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", coll.Name(), err)
	}
	defer cur.Close(ctx)

	var out []namedDoc
	for cur.Next(ctx) {
		var doc namedDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode %s: %w", coll.Name(), err)
		}
		out = append(out, doc)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", coll.Name(), err)
	}
	return out, nil
}

func updateNamed(ctx context.Context, coll *mongo.Collection, id, name string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotFound
	}

	res, err := coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"name": name}})
	if err != nil {
		return fmt.Errorf("update %s: %w", coll.Name(), err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func deleteNamed(ctx context.Context, coll *mongo.Collection, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotFound
	}

	res, err := coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete %s: %w", coll.Name(), err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
