package mocks

import (
	context "context"
	time "time"

	mock "github.com/stretchr/testify/mock"
)

// PopularityRecorder is a mock type for the PopularityRecorder type
type PopularityRecorder struct {
	mock.Mock
}

// RecordOrder provides a mock function with given fields: ctx, items, at
func (_m *PopularityRecorder) RecordOrder(ctx context.Context, items []string, at time.Time) error {
	ret := _m.Called(ctx, items, at)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, []string, time.Time) error); ok {
		r0 = rf(ctx, items, at)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewPopularityRecorder creates a new instance of PopularityRecorder. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewPopularityRecorder(t interface {
	mock.TestingT
	Cleanup(func())
}) *PopularityRecorder {
	m := &PopularityRecorder{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
