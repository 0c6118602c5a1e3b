package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	rpsMocks "github.com/umalmyha/taskdesk/internal/repository/mocks"
)

var testNow = time.Date(2024, time.March, 14, 9, 30, 0, 0, time.UTC)

func fixedNow() time.Time {
	return testNow
}

func strPtr(s string) *string {
	return &s
}

// passthroughTransactor mocks transactor running function within caller context
func passthroughTransactor(t mock.TestingT) *rpsMocks.Transactor {
	trx := &rpsMocks.Transactor{}
	trx.Mock.Test(t)
	trx.On(
		"WithinTransaction",
		mock.Anything,
		mock.AnythingOfType("func(context.Context) error"),
	).Return(func(ctx context.Context, txFunc func(ctx context.Context) error) error {
		return txFunc(ctx)
	}).Maybe()
	return trx
}
