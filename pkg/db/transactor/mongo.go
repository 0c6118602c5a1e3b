package transactor

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

type mongoTransactor struct {
	client *mongo.Client
}

// NewMongoTransactor builds Transactor running functions within mongo session transaction.
// Collections pick the session up from mongo.SessionContext, so repositories need no extra wiring.
// Transactions require replica set deployment.
func NewMongoTransactor(client *mongo.Client) Transactor {
	return &mongoTransactor{client: client}
}

// WithinTransaction joins session already present in context, otherwise starts a new transaction.
// Function runs exactly once, transient errors are returned to the caller as is.
func (t *mongoTransactor) WithinTransaction(ctx context.Context, txFunc func(context.Context) error) (err error) {
	if mongo.SessionFromContext(ctx) != nil {
		return txFunc(ctx)
	}

	sess, err := t.client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session - %w", err)
	}
	defer sess.EndSession(ctx)

	if err := sess.StartTransaction(); err != nil {
		return fmt.Errorf("failed to begin transaction - %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = sess.AbortTransaction(ctx)
			panic(p)
		}

		if err != nil {
			_ = sess.AbortTransaction(ctx)
			return
		}

		if commitErr := sess.CommitTransaction(ctx); commitErr != nil {
			err = fmt.Errorf("failed to commit transaction - %w", commitErr)
		}
	}()

	err = txFunc(mongo.NewSessionContext(ctx, sess))
	return err
}
