// Package kvstore provides a JSON document store on top of redis.
//
// Each entity repository stores one JSON document per row under
// <prefix>:<collection>:<id> and declares a small set of lookup attributes.
// Every declared attribute is indexed with a redis set
// (<prefix>:<collection>:idx:<attr>:<value> -> ids), so the common filters
// (picks by pool, participants by user, invitation by token) avoid a full
// scan. Filters beyond the declared attributes are applied in memory by the
// repositories; at tens to low-thousands of rows per collection that is the
// intended trade-off, not an oversight.
package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// ErrNotFound indicates that no document exists under the requested id.
var ErrNotFound = errors.New("kvstore: document not found")

const keyPrefix = "pickem"

// Store is a redis-backed document store shared by the key-value repositories.
type Store struct {
	client *redis.Client
}

// New connects to redis and verifies the connection.
func New(ctx context.Context, cfg Config) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return &Store{client: client}, nil
}

// NewWithClient wraps an existing redis client. Used by tests.
func NewWithClient(client *redis.Client) *Store {
	return &Store{client: client}
}

// HealthCheck verifies redis availability.
func (s *Store) HealthCheck(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the underlying redis client.
func (s *Store) Close() error {
	return s.client.Close()
}

func docKey(collection string, id uint) string {
	return fmt.Sprintf("%s:%s:%d", keyPrefix, collection, id)
}

func idsKey(collection string) string {
	return fmt.Sprintf("%s:%s:ids", keyPrefix, collection)
}

func seqKey(collection string) string {
	return fmt.Sprintf("%s:%s:seq", keyPrefix, collection)
}

func attrsKey(collection string, id uint) string {
	return fmt.Sprintf("%s:%s:attrs:%d", keyPrefix, collection, id)
}

func indexKey(collection, attr, value string) string {
	return fmt.Sprintf("%s:%s:idx:%s:%s", keyPrefix, collection, attr, value)
}

// NextID allocates the next id for a collection.
func (s *Store) NextID(ctx context.Context, collection string) (uint, error) {
	id, err := s.client.Incr(ctx, seqKey(collection)).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to allocate id for %s: %w", collection, err)
	}
	return uint(id), nil
}

// Put stores a document and refreshes its lookup-attribute indexes.
// Existing index entries for the id are removed first so an update never
// leaves the document reachable under stale attribute values.
func (s *Store) Put(ctx context.Context, collection string, id uint, doc any, attrs map[string]string) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal %s document: %w", collection, err)
	}

	oldAttrs, err := s.client.HGetAll(ctx, attrsKey(collection, id)).Result()
	if err != nil {
		return fmt.Errorf("failed to read old attributes: %w", err)
	}

	member := strconv.FormatUint(uint64(id), 10)
	pipe := s.client.TxPipeline()
	for attr, value := range oldAttrs {
		pipe.SRem(ctx, indexKey(collection, attr, value), member)
	}
	pipe.Del(ctx, attrsKey(collection, id))
	pipe.Set(ctx, docKey(collection, id), data, 0)
	pipe.SAdd(ctx, idsKey(collection), member)
	for attr, value := range attrs {
		pipe.SAdd(ctx, indexKey(collection, attr, value), member)
		pipe.HSet(ctx, attrsKey(collection, id), attr, value)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store %s document: %w", collection, err)
	}
	return nil
}

// Get loads a document into dest.
func (s *Store) Get(ctx context.Context, collection string, id uint, dest any) error {
	data, err := s.client.Get(ctx, docKey(collection, id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load %s document: %w", collection, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to unmarshal %s document: %w", collection, err)
	}
	return nil
}

// Delete removes a document and its index entries.
func (s *Store) Delete(ctx context.Context, collection string, id uint) error {
	oldAttrs, err := s.client.HGetAll(ctx, attrsKey(collection, id)).Result()
	if err != nil {
		return fmt.Errorf("failed to read old attributes: %w", err)
	}

	member := strconv.FormatUint(uint64(id), 10)
	pipe := s.client.TxPipeline()
	for attr, value := range oldAttrs {
		pipe.SRem(ctx, indexKey(collection, attr, value), member)
	}
	pipe.Del(ctx, attrsKey(collection, id))
	pipe.Del(ctx, docKey(collection, id))
	pipe.SRem(ctx, idsKey(collection), member)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete %s document: %w", collection, err)
	}
	return nil
}

// All returns the raw documents of a collection.
func (s *Store) All(ctx context.Context, collection string) ([][]byte, error) {
	ids, err := s.client.SMembers(ctx, idsKey(collection)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list %s ids: %w", collection, err)
	}
	return s.fetchDocs(ctx, collection, ids)
}

// IDsBy returns the ids indexed under a declared attribute value.
func (s *Store) IDsBy(ctx context.Context, collection, attr, value string) ([]uint, error) {
	members, err := s.client.SMembers(ctx, indexKey(collection, attr, value)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s index %s: %w", collection, attr, err)
	}
	ids := make([]uint, 0, len(members))
	for _, m := range members {
		id, parseErr := strconv.ParseUint(m, 10, 64)
		if parseErr != nil {
			continue
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}

// By returns the raw documents indexed under a declared attribute value.
func (s *Store) By(ctx context.Context, collection, attr, value string) ([][]byte, error) {
	members, err := s.client.SMembers(ctx, indexKey(collection, attr, value)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s index %s: %w", collection, attr, err)
	}
	return s.fetchDocs(ctx, collection, members)
}

// fetchDocs loads documents by id members, skipping ids whose document has
// been deleted between the set read and the fetch.
func (s *Store) fetchDocs(ctx context.Context, collection string, members []string) ([][]byte, error) {
	if len(members) == 0 {
		return [][]byte{}, nil
	}

	keys := make([]string, 0, len(members))
	for _, m := range members {
		id, err := strconv.ParseUint(m, 10, 64)
		if err != nil {
			continue
		}
		keys = append(keys, docKey(collection, uint(id)))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s documents: %w", collection, err)
	}

	docs := make([][]byte, 0, len(values))
	for _, v := range values {
		str, ok := v.(string)
		if !ok {
			continue
		}
		docs = append(docs, []byte(str))
	}
	return docs, nil
}

// DecodeAll unmarshals a raw document list into a typed slice.
func DecodeAll[T any](docs [][]byte) ([]T, error) {
	out := make([]T, 0, len(docs))
	for _, doc := range docs {
		var item T
		if err := json.Unmarshal(doc, &item); err != nil {
			return nil, fmt.Errorf("failed to unmarshal document: %w", err)
		}
		out = append(out, item)
	}
	return out, nil
}
