package repository

import (
	"context"
	"fmt"
	"time"

	"cafestaff/entity"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const auditCollection = "audit_log"

// MongoAuditRepository mirrors audit entries into a mongo collection.
type MongoAuditRepository struct {
	client *mongo.Client
	coll   *mongo.Collection
}

func NewMongoAuditRepository(ctx context.Context, uri, database string) (*MongoAuditRepository, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return &MongoAuditRepository{
		client: client,
		coll:   client.Database(database).Collection(auditCollection),
	}, nil
}

func (r *MongoAuditRepository) Record(ctx context.Context, e *entity.AuditEntry) error {
	_, err := r.coll.InsertOne(ctx, e)
	return err
}

func (r *MongoAuditRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
