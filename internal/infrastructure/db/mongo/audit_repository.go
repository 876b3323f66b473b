package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/itops/asset-tracker/internal/core/domain"
)

const auditCollection = "audit_events"

// AuditRepository is the append-only audit trail. Events are written by
// dispatcher workers, never from the request path.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

type mongoAuditEvent struct {
	Kind       string    `bson:"kind"`
	Username   string    `bson:"username,omitempty"`
	ClientAddr string    `bson:"client_addr,omitempty"`
	Resource   string    `bson:"resource,omitempty"`
	Detail     string    `bson:"detail,omitempty"`
	Timestamp  time.Time `bson:"timestamp"`
}

func (r *AuditRepository) Insert(ctx context.Context, event *domain.AuditEvent) error {
	doc := mongoAuditEvent{
		Kind:       event.Kind,
		Username:   event.Username,
		ClientAddr: event.ClientAddr,
		Resource:   event.Resource,
		Detail:     event.Detail,
		Timestamp:  event.Timestamp,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}
