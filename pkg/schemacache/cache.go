package schemacache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"warehouse-chat-be/internal/repository/contract"
)

// CachedSchemaRepository memoizes information_schema lookups. Table shapes
// change on deploys, not mid-conversation, so a short TTL is safe and saves a
// round trip on every text-to-SQL prompt.
type CachedSchemaRepository struct {
	inner contract.SchemaRepository
	cache *gocache.Cache
}

func New(inner contract.SchemaRepository) *CachedSchemaRepository {
	return &CachedSchemaRepository{
		inner: inner,
		cache: gocache.New(10*time.Minute, 30*time.Minute),
	}
}

func (r *CachedSchemaRepository) Columns(ctx context.Context, table string) ([]contract.ColumnInfo, error) {
	if cached, found := r.cache.Get(table); found {
		return cached.([]contract.ColumnInfo), nil
	}
	columns, err := r.inner.Columns(ctx, table)
	if err != nil {
		return nil, err
	}
	r.cache.Set(table, columns, gocache.DefaultExpiration)
	return columns, nil
}
