package reconcile

// Keyed is an immutable index of entities by id that remembers insertion order.
type Keyed[T any] struct {
	order []string
	items map[string]T
}

// Index builds a Keyed collection from items using key. The collection name is
// only used in the error returned when two items share an id.
func Index[T any](collection string, items []T, key func(T) string) (*Keyed[T], error) {
	k := &Keyed[T]{
		order: make([]string, 0, len(items)),
		items: make(map[string]T, len(items)),
	}
	for _, item := range items {
		id := key(item)
		if _, exists := k.items[id]; exists {
			return nil, &DuplicateIDError{Collection: collection, ID: id}
		}
		k.items[id] = item
		k.order = append(k.order, id)
	}
	return k, nil
}

// Len returns the number of entities.
func (k *Keyed[T]) Len() int { return len(k.order) }

// Get returns the entity with the given id.
func (k *Keyed[T]) Get(id string) (T, bool) {
	item, ok := k.items[id]
	return item, ok
}

// Has reports whether id is present.
func (k *Keyed[T]) Has(id string) bool {
	_, ok := k.items[id]
	return ok
}

// IDs returns the ids in insertion order.
func (k *Keyed[T]) IDs() []string {
	out := make([]string, len(k.order))
	copy(out, k.order)
	return out
}

// filter returns the ids of k, in order, for which keep returns true.
func (k *Keyed[T]) filter(keep func(id string) bool) []string {
	var out []string
	for _, id := range k.order {
		if keep(id) {
			out = append(out, id)
		}
	}
	return out
}
