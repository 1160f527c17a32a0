package mocks

import (
	context "context"
	time "time"

	domain "restaurant-bookkeeping/bookkeeping-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// Journal is a mock type for the Journal type
type Journal struct {
	mock.Mock
}

// RecordOrder provides a mock function with given fields: ctx, summary, placedAt
func (_m *Journal) RecordOrder(ctx context.Context, summary domain.OrderSummary, placedAt time.Time) error {
	ret := _m.Called(ctx, summary, placedAt)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.OrderSummary, time.Time) error); ok {
		r0 = rf(ctx, summary, placedAt)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// RecordReservation provides a mock function with given fields: ctx, customerName, tableNumber, reservedFor
func (_m *Journal) RecordReservation(ctx context.Context, customerName string, tableNumber int, reservedFor time.Time) error {
	ret := _m.Called(ctx, customerName, tableNumber, reservedFor)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, int, time.Time) error); ok {
		r0 = rf(ctx, customerName, tableNumber, reservedFor)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewJournal creates a new instance of Journal. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewJournal(t interface {
	mock.TestingT
	Cleanup(func())
}) *Journal {
	m := &Journal{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
