package domain

import "context"

type FeeListFilter struct {
	Name    string
	Enabled *bool
}

// FeeRepository persists fee records.
type FeeRepository interface {
	Create(ctx context.Context, fee *FeeRecord) error
	FindByID(ctx context.Context, id string) (*FeeRecord, error)
	List(ctx context.Context, filter FeeListFilter) ([]FeeRecord, error)
	Update(ctx context.Context, fee *FeeRecord) error
	SetEnabled(ctx context.Context, id string, enabled bool) error
	Delete(ctx context.Context, id string) error
	Load(ctx context.Context) ([]FeeRecord, error)
}
