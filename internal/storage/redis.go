package storage

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps each collection in a hash keyed by document id. A sorted
// set scored by a per-collection INCR sequence records insertion order.
type RedisStore struct {
	Client *redis.Client
	Prefix string
}

func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{Client: client, Prefix: prefix}
}

func (s *RedisStore) collectionKey(collection string) string {
	return s.Prefix + collection
}

func (s *RedisStore) orderKey(collection string) string {
	return s.Prefix + collection + ":order"
}

func (s *RedisStore) seqKey(collection string) string {
	return s.Prefix + collection + ":seq"
}

func (s *RedisStore) Get(ctx context.Context, collection, id string) ([]byte, error) {
	body, err := s.Client.HGet(ctx, s.collectionKey(collection), id).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return body, nil
}

// Set takes the next sequence number before the transaction; ZADD NX keeps
// the first position of a rewritten document, so unused numbers only leave gaps.
func (s *RedisStore) Set(ctx context.Context, collection, id string, body []byte) error {
	seq, err := s.Client.Incr(ctx, s.seqKey(collection)).Result()
	if err != nil {
		return err
	}

	_, err = s.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, s.collectionKey(collection), id, body)
		pipe.ZAddNX(ctx, s.orderKey(collection), redis.Z{
			Score:  float64(seq),
			Member: id,
		})
		return nil
	})
	return err
}

func (s *RedisStore) List(ctx context.Context, collection string) ([]Document, error) {
	ids, err := s.Client.ZRange(ctx, s.orderKey(collection), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	values, err := s.Client.HMGet(ctx, s.collectionKey(collection), ids...).Result()
	if err != nil {
		return nil, err
	}

	docs := make([]Document, 0, len(ids))
	for i, value := range values {
		body, ok := value.(string)
		if !ok {
			continue
		}
		docs = append(docs, Document{ID: ids[i], Body: []byte(body)})
	}
	return docs, nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.Client.Ping(ctx).Err()
}

func (s *RedisStore) Close() error {
	return s.Client.Close()
}

var _ DocumentStore = (*RedisStore)(nil)
