package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/consultantnexus/marketplace-system/internal/core/ports"
)

const snapshotCollection = "snapshots"

// snapshotDoc is the stored shape: one document per collection key holding
// the full JSON snapshot as raw bytes.
type snapshotDoc struct {
	Key  string `bson:"_id"`
	Data []byte `bson:"data"`
}

// SnapshotStore persists collection snapshots in a single Mongo collection,
// one document per key, replaced wholesale on every write.
type SnapshotStore struct {
	col *mongo.Collection
}

func NewSnapshotStore(db *mongo.Database) *SnapshotStore {
	return &SnapshotStore{col: db.Collection(snapshotCollection)}
}

func (s *SnapshotStore) Load(ctx context.Context, key string) ([]byte, error) {
	var doc snapshotDoc
	err := s.col.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ports.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("snapshot load %s: %w", key, err)
	}
	return doc.Data, nil
}

func (s *SnapshotStore) Save(ctx context.Context, key string, data []byte) error {
	_, err := s.col.ReplaceOne(ctx, bson.M{"_id": key}, snapshotDoc{Key: key, Data: data}, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("snapshot save %s: %w", key, err)
	}
	return nil
}

// SaveAll upserts every entry in one bulk write so paired snapshots land
// together.
func (s *SnapshotStore) SaveAll(ctx context.Context, entries map[string][]byte) error {
	if len(entries) == 0 {
		return nil
	}
	models := make([]mongo.WriteModel, 0, len(entries))
	for key, data := range entries {
		models = append(models, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": key}).
			SetReplacement(snapshotDoc{Key: key, Data: data}).
			SetUpsert(true))
	}
	if _, err := s.col.BulkWrite(ctx, models); err != nil {
		return fmt.Errorf("snapshot bulk save: %w", err)
	}
	return nil
}

func (s *SnapshotStore) Delete(ctx context.Context, key string) error {
	if _, err := s.col.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("snapshot delete %s: %w", key, err)
	}
	return nil
}
