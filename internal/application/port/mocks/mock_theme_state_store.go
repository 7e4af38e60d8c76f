package mocks

import (
	context "context"

	entity "github.com/bnema/themesync/internal/domain/entity"
	mock "github.com/stretchr/testify/mock"
)

// MockThemeStateStore is a mock type for the ThemeStateStore type
type MockThemeStateStore struct {
	mock.Mock
}

type MockThemeStateStore_Expecter struct {
	mock *mock.Mock
}

func (_m *MockThemeStateStore) EXPECT() *MockThemeStateStore_Expecter {
	return &MockThemeStateStore_Expecter{mock: &_m.Mock}
}

// Load provides a mock function with given fields: ctx
func (_m *MockThemeStateStore) Load(ctx context.Context) (*entity.CachedThemeState, bool) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Load")
	}

	var r0 *entity.CachedThemeState
	var r1 bool
	if rf, ok := ret.Get(0).(func(context.Context) (*entity.CachedThemeState, bool)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) *entity.CachedThemeState); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.CachedThemeState)
	}
	if rf, ok := ret.Get(1).(func(context.Context) bool); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Get(1).(bool)
	}

	return r0, r1
}

// MockThemeStateStore_Load_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Load'
type MockThemeStateStore_Load_Call struct {
	*mock.Call
}

// Load is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockThemeStateStore_Expecter) Load(ctx interface{}) *MockThemeStateStore_Load_Call {
	return &MockThemeStateStore_Load_Call{Call: _e.mock.On("Load", ctx)}
}

func (_c *MockThemeStateStore_Load_Call) Run(run func(ctx context.Context)) *MockThemeStateStore_Load_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockThemeStateStore_Load_Call) Return(_a0 *entity.CachedThemeState, _a1 bool) *MockThemeStateStore_Load_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

// Save provides a mock function with given fields: ctx, state
func (_m *MockThemeStateStore) Save(ctx context.Context, state entity.ThemeState) error {
	ret := _m.Called(ctx, state)

	if len(ret) == 0 {
		panic("no return value specified for Save")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, entity.ThemeState) error); ok {
		r0 = rf(ctx, state)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockThemeStateStore_Save_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Save'
type MockThemeStateStore_Save_Call struct {
	*mock.Call
}

// Save is a helper method to define mock.On call
//   - ctx context.Context
//   - state entity.ThemeState
func (_e *MockThemeStateStore_Expecter) Save(ctx interface{}, state interface{}) *MockThemeStateStore_Save_Call {
	return &MockThemeStateStore_Save_Call{Call: _e.mock.On("Save", ctx, state)}
}

func (_c *MockThemeStateStore_Save_Call) Run(run func(ctx context.Context, state entity.ThemeState)) *MockThemeStateStore_Save_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(entity.ThemeState))
	})
	return _c
}

func (_c *MockThemeStateStore_Save_Call) Return(_a0 error) *MockThemeStateStore_Save_Call {
	_c.Call.Return(_a0)
	return _c
}

// NewMockThemeStateStore creates a new instance of MockThemeStateStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockThemeStateStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockThemeStateStore {
	mock := &MockThemeStateStore{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
