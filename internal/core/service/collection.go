package service

// CollectionState tracks a screen's load/submit lifecycle:
// Idle → Loading → {Loaded, LoadError}, and once loaded,
// Loaded → Submitting → {Loaded, SubmitError}.
type CollectionState int

const (
	StateIdle CollectionState = iota
	StateLoading
	StateLoaded
	StateLoadError
	StateSubmitting
	StateSubmitError
)

// CollectionStore holds a screen's local copy of a backend collection and
// applies optimistic patches after successful mutations instead of
// re-fetching. One instance per screen; access is single-goroutine by
// construction (each console command runs to completion before the next).
type CollectionStore[T any] struct {
	state CollectionState
	items []T
	err   error
}

func NewCollectionStore[T any]() *CollectionStore[T] {
	return &CollectionStore[T]{state: StateIdle}
}

// Load replaces the whole collection with a fresh fetch.
func (s *CollectionStore[T]) Load(fetch func() ([]T, error)) error {
	s.state = StateLoading
	items, err := fetch()
	if err != nil {
		s.state = StateLoadError
		s.err = err
		return err
	}
	s.items = items
	s.state = StateLoaded
	s.err = nil
	return nil
}

// Create runs the mutation and, when the backend echoes the created record,
// appends it locally. It reports echoed=false when the backend returned no
// record, in which case the caller should Load again to pick up the
// server-assigned id.
func (s *CollectionStore[T]) Create(do func() (*T, error)) (echoed bool, err error) {
	s.state = StateSubmitting
	item, err := do()
	if err != nil {
		s.state = StateSubmitError
		s.err = err
		return false, err
	}
	s.state = StateLoaded
	s.err = nil
	if item == nil {
		return false, nil
	}
	s.items = append(s.items, *item)
	return true, nil
}

// Patch runs the mutation and, on success, rewrites every matching record
// in place.
func (s *CollectionStore[T]) Patch(match func(T) bool, patch func(*T), do func() error) error {
	s.state = StateSubmitting
	if err := do(); err != nil {
		s.state = StateSubmitError
		s.err = err
		return err
	}
	for i := range s.items {
		if match(s.items[i]) {
			patch(&s.items[i])
		}
	}
	s.state = StateLoaded
	s.err = nil
	return nil
}

// Replace runs the mutation and, on success, swaps every matching record
// for the given one.
func (s *CollectionStore[T]) Replace(match func(T) bool, item T, do func() error) error {
	return s.Patch(match, func(t *T) { *t = item }, do)
}

// Remove runs the mutation and, on success, drops every matching record
// without a re-fetch.
func (s *CollectionStore[T]) Remove(match func(T) bool, do func() error) error {
	s.state = StateSubmitting
	if err := do(); err != nil {
		s.state = StateSubmitError
		s.err = err
		return err
	}
	kept := s.items[:0]
	for _, item := range s.items {
		if !match(item) {
			kept = append(kept, item)
		}
	}
	s.items = kept
	s.state = StateLoaded
	s.err = nil
	return nil
}

// Items returns a copy of the local collection.
func (s *CollectionStore[T]) Items() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

func (s *CollectionStore[T]) Len() int               { return len(s.items) }
func (s *CollectionStore[T]) State() CollectionState { return s.state }
func (s *CollectionStore[T]) Err() error             { return s.err }

// FilterView derives a filtered view over a collection. The source slice is
// never mutated; recompute whenever the collection or the filter changes.
func FilterView[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
