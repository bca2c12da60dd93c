package storage

import (
	"context"
	"errors"
)

const (
	CollectionRestaurants = "restaurants"
	CollectionMenuItems   = "menu_items"
)

var ErrNotFound = errors.New("document not found")

type Document struct {
	ID   string
	Body []byte
}

// DocumentStore is a hierarchical key/document service addressed by
// collection and id. List returns documents in the store's insertion order.
type DocumentStore interface {
	Get(ctx context.Context, collection, id string) ([]byte, error)
	Set(ctx context.Context, collection, id string, body []byte) error
	List(ctx context.Context, collection string) ([]Document, error)
	Ping(ctx context.Context) error
	Close() error
}

// Key returns the path-like address of a document, e.g. "restaurants/42".
func Key(collection, id string) string {
	return collection + "/" + id
}
