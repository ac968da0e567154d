package filter

import "strings"

// All is the sentinel selector value that disables a predicate.
const All = "all"

// Predicate decides whether one item belongs to the filtered view.
// Predicates are pure: deterministic for identical inputs and free of
// side effects.
type Predicate[T any] func(T) bool

// Everything matches any item. It is what a disabled filter becomes.
func Everything[T any]() Predicate[T] {
	return func(T) bool { return true }
}

// And combines predicates conjunctively. With no predicates it
// matches everything.
func And[T any](predicates ...Predicate[T]) Predicate[T] {
	return func(item T) bool {
		for _, p := range predicates {
			if !p(item) {
				return false
			}
		}
		return true
	}
}

// Apply returns the items matching the predicate, in order, as a new
// slice. The source is never mutated.
func Apply[T any](items []T, predicate Predicate[T]) []T {
	if items == nil {
		return nil
	}
	filtered := make([]T, 0, len(items))
	for _, item := range items {
		if predicate(item) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// SearchTerm matches items whose searchable fields contain the term,
// case-insensitively. An empty term matches everything, so the
// filtered view equals the source collection.
func SearchTerm[T any](term string, fields func(T) []string) Predicate[T] {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return Everything[T]()
	}
	return func(item T) bool {
		for _, field := range fields(item) {
			if strings.Contains(strings.ToLower(field), term) {
				return true
			}
		}
		return false
	}
}

// Selector matches items whose selected value equals the wanted one.
// The "all" sentinel (or an empty selection) disables the predicate.
func Selector[T any](want string, value func(T) string) Predicate[T] {
	if want == "" || strings.EqualFold(want, All) {
		return Everything[T]()
	}
	return func(item T) bool {
		return value(item) == want
	}
}

// StockAtMost matches items whose stock level is at or below the
// threshold. A negative threshold disables the predicate.
func StockAtMost[T any](threshold int, stock func(T) int) Predicate[T] {
	if threshold < 0 {
		return Everything[T]()
	}
	return func(item T) bool {
		return stock(item) <= threshold
	}
}
