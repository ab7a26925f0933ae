package prospect

import "context"

// Repository describes prospect persistence needs from use cases.
//
// IDs are not unique at the storage level, so Update and Delete act on every
// matching row and report how many were touched.
type Repository interface {
	Insert(ctx context.Context, p Prospect) error
	List(ctx context.Context) ([]Prospect, error)
	GetByID(ctx context.Context, id string) (Prospect, bool, error)
	Update(ctx context.Context, u Update) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	ReplaceAll(ctx context.Context, items []Prospect) error
}
