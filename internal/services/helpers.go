package services

import (
	"time"

	"github.com/bakehouse/go-recipe-backend/internal/domain"
)

// now returns the timestamp written into created_at/updated_at. All
// repository timestamps are UTC.
func now() time.Time { return time.Now().UTC() }

// ptrOf converts a set Optional into a pointer column value: explicit null
// becomes nil, a value becomes a pointer to it. Callers must only invoke
// it for fields where IsSet() is true.
func ptrOf[T any](o domain.Optional[T]) *T {
	if v, ok := o.Value(); ok {
		return &v
	}
	return nil
}
