package club

import "context"

// Repository resolves clubs by display name, matching either name field
// case-insensitively.
type Repository interface {
	FindByName(ctx context.Context, name string) (Club, bool, error)
}
