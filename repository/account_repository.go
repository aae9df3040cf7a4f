package repository

import (
	"context"
	"errors"

	"pfm-backend/domain"
)

var ErrNotFound = errors.New("not found")

// AccountRepository supplies account snapshots to the analysis service.
// Fetch returns ErrNotFound for unknown ids and an error wrapping
// domain.ErrInvalidSnapshot for malformed data.
type AccountRepository interface {
	Fetch(ctx context.Context, accountID string) (domain.AccountSnapshot, error)
	Save(ctx context.Context, snapshot domain.AccountSnapshot) error
}
