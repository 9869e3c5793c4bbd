package mongo

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/99minutos/commerce-api/internal/core/domain"
	"github.com/99minutos/commerce-api/internal/core/ports"
)

// seqField preserves collection order across a round trip through Mongo.
const seqField = "_seq"

var (
	_ ports.SeedSource     = (*SnapshotRepository)(nil)
	_ ports.SnapshotWriter = (*SnapshotRepository)(nil)
)

// SnapshotRepository mirrors each in-memory collection into the Mongo
// collection of the same name.
type SnapshotRepository struct {
	db *mongo.Database
}

// NewSnapshotRepository creates a new SnapshotRepository.
func NewSnapshotRepository(db *mongo.Database) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Write replaces the stored collection with the snapshot. The delete and the
// insert are separate operations; a failure between them leaves the
// collection empty until the next snapshot of the same kind.
func (r *SnapshotRepository) Write(ctx context.Context, snap ports.Snapshot) error {
	docs := make([]any, 0, len(snap.Records))
	for i, rec := range snap.Records {
		doc, err := toDocument(i, rec)
		if err != nil {
			return fmt.Errorf("encode %s[%d]: %w", snap.Kind, i, err)
		}
		docs = append(docs, doc)
	}

	col := r.db.Collection(snap.Kind)
	if _, err := col.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("clear %s: %w", snap.Kind, err)
	}
	if len(docs) == 0 {
		return nil
	}
	if _, err := col.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true)); err != nil {
		return fmt.Errorf("insert %s: %w", snap.Kind, err)
	}
	return nil
}

// Load decodes the stored collection, in snapshot order, into dst, which must
// be a pointer to a slice. An empty collection leaves dst untouched.
func (r *SnapshotRepository) Load(ctx context.Context, kind string, dst any) error {
	slice := reflect.ValueOf(dst)
	if slice.Kind() != reflect.Pointer || slice.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("load %s: destination must be a pointer to a slice, got %T", kind, dst)
	}

	cur, err := r.db.Collection(kind).Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: seqField, Value: 1}}))
	if err != nil {
		return fmt.Errorf("find %s: %w", kind, err)
	}
	var raws []bson.Raw
	if err := cur.All(ctx, &raws); err != nil {
		return fmt.Errorf("read %s: %w", kind, err)
	}
	if len(raws) == 0 {
		return nil
	}

	elemType := slice.Elem().Type().Elem()
	out := reflect.MakeSlice(slice.Elem().Type(), 0, len(raws))
	for i, raw := range raws {
		v := reflect.New(elemType)
		if err := bson.Unmarshal(raw, v.Interface()); err != nil {
			return fmt.Errorf("decode %s[%d]: %w", kind, i, err)
		}
		out = reflect.Append(out, v.Elem())
	}
	slice.Elem().Set(out)
	return nil
}

// EnsureIndexes creates the ordering index on every collection.
func (r *SnapshotRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	for _, kind := range domain.Kinds {
		_, err := r.db.Collection(kind).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: seqField, Value: 1}},
		})
		if err != nil {
			return fmt.Errorf("index %s: %w", kind, err)
		}
	}
	return nil
}

// toDocument encodes rec through its bson tags and prepends the sequence
// number.
func toDocument(seq int, rec any) (bson.D, error) {
	raw, err := bson.Marshal(rec)
	if err != nil {
		return nil, err
	}
	var fields bson.D
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	return append(bson.D{{Key: seqField, Value: seq}}, fields...), nil
}
