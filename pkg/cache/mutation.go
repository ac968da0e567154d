package cache

import "context"

// MutationFunc performs the state-changing call.
type MutationFunc[A any, R any] func(ctx context.Context, arg A) (R, error)

// Mutation wraps a write and the consistency contract around it: on
// success it invalidates exactly the keys it declares (an entity's
// collection key and its stats key), and nothing else. A failed
// mutation invalidates nothing.
type Mutation[A any, R any] struct {
	store       *Store
	run         MutationFunc[A, R]
	invalidates []Key
}

// NewMutation builds a mutation that invalidates the given keys on
// success.
func NewMutation[A any, R any](store *Store, run MutationFunc[A, R], invalidates ...Key) *Mutation[A, R] {
	return &Mutation[A, R]{
		store:       store,
		run:         run,
		invalidates: invalidates,
	}
}

// Execute runs the mutation and, on success, marks the declared
// queries stale so affected views refetch.
func (m *Mutation[A, R]) Execute(ctx context.Context, arg A) (R, error) {
	result, err := m.run(ctx, arg)
	if err != nil {
		return result, err
	}
	m.store.Invalidate(m.invalidates...)
	return result, nil
}

// Invalidates returns the keys this mutation declares.
func (m *Mutation[A, R]) Invalidates() []Key {
	return append([]Key(nil), m.invalidates...)
}
