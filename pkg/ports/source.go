package ports

import (
	"context"

	"github.com/aretw0/placeholder/pkg/domain"
)

// DataSource fetches remote collections.
type DataSource interface {
	// FetchCollection returns the records of kind matching filter, in source order.
	// A zero filter returns the whole collection.
	FetchCollection(ctx context.Context, kind domain.ResourceKind, filter domain.Filter) ([]domain.Record, error)
}

// Invalidator is implemented by sources that cache collections.
type Invalidator interface {
	Invalidate(ctx context.Context, kind domain.ResourceKind, filter domain.Filter) error
}

// DataSourceFunc adapts a function to DataSource.
type DataSourceFunc func(ctx context.Context, kind domain.ResourceKind, filter domain.Filter) ([]domain.Record, error)

// FetchCollection calls f.
func (f DataSourceFunc) FetchCollection(ctx context.Context, kind domain.ResourceKind, filter domain.Filter) ([]domain.Record, error) {
	return f(ctx, kind, filter)
}
