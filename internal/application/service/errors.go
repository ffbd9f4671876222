package service

import (
	"fmt"

	"github.com/google/uuid"
)

// StoreConflictError reports that the store's authoritative state diverged
// from the optimistic snapshot the cart was composed against, e.g. another
// terminal sold the same stock first. It is distinct from the engine's
// local validation failures: the caller must discard the local state,
// re-fetch the affected products and let the user retry. The engine never
// retries on its own.
type StoreConflictError struct {
	ProductIDs []uuid.UUID
}

func (e *StoreConflictError) Error() string {
	return fmt.Sprintf("stock changed concurrently for %d product(s), re-fetch and retry", len(e.ProductIDs))
}
