package auth

import (
	"context"

	"github.com/google/uuid"
)

// Denylist marks user ids whose tokens must stop working before they
// expire, e.g. after account deletion. Checked by the auth middleware on
// every authenticated request.
type Denylist interface {
	Deny(ctx context.Context, userID uuid.UUID) error
	IsDenied(ctx context.Context, userID uuid.UUID) (bool, error)
}
