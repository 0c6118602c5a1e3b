package transactor

import (
	"context"
)

// Transactor runs function within a single store transaction.
// The transaction travels inside the context passed to txFunc.
type Transactor interface {
	WithinTransaction(ctx context.Context, txFunc func(context.Context) error) error
}
