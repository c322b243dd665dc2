package reconcile

import "fmt"

// FieldSpec describes one field of an entity type.
type FieldSpec[T any] struct {
	// Name is the field name shown to presenters.
	Name string

	// Get reads the field from an entity. Returning an error marks the field as
	// unavailable for that entity; wrap ErrFieldUnavailable or use MissingField.
	Get func(T) (Value, error)

	// Relevant controls whether the field takes part in comparison and display.
	// Internal identifiers and append-only history fields are declared with
	// Relevant set to false.
	Relevant bool
}

// Field declares a relevant field whose accessor cannot fail.
func Field[T any](name string, get func(T) Value) FieldSpec[T] {
	return FieldSpec[T]{
		Name:     name,
		Get:      func(e T) (Value, error) { return get(e), nil },
		Relevant: true,
	}
}

// Ignored declares a field that is part of the entity but excluded from diffs.
func Ignored[T any](name string, get func(T) Value) FieldSpec[T] {
	spec := Field(name, get)
	spec.Relevant = false
	return spec
}

// Catalog is the static, ordered field table for one entity kind.
type Catalog[T any] struct {
	kind     string
	key      func(T) string
	all      []FieldSpec[T]
	relevant []FieldSpec[T]
}

// NewCatalog builds a catalog. It panics on an empty kind, a nil key function,
// a nil accessor, or an empty or duplicate field name, since catalogs are
// declared once at package level.
func NewCatalog[T any](kind string, key func(T) string, fields ...FieldSpec[T]) *Catalog[T] {
	if kind == "" {
		panic("reconcile: catalog kind must not be empty")
	}
	if key == nil {
		panic(fmt.Sprintf("reconcile: catalog %s has no key function", kind))
	}

	c := &Catalog[T]{kind: kind, key: key}
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if f.Name == "" {
			panic(fmt.Sprintf("reconcile: catalog %s declares a field without a name", kind))
		}
		if f.Get == nil {
			panic(fmt.Sprintf("reconcile: catalog %s field %s has no accessor", kind, f.Name))
		}
		if _, dup := seen[f.Name]; dup {
			panic(fmt.Sprintf("reconcile: catalog %s declares field %s twice", kind, f.Name))
		}
		seen[f.Name] = struct{}{}

		c.all = append(c.all, f)
		if f.Relevant {
			c.relevant = append(c.relevant, f)
		}
	}
	return c
}

// Kind returns the entity kind the catalog describes (e.g. "attachment").
func (c *Catalog[T]) Kind() string { return c.kind }

// Key returns the identifier of an entity.
func (c *Catalog[T]) Key(e T) string { return c.key(e) }

// Fields returns every declared field, relevant or not, in declaration order.
func (c *Catalog[T]) Fields() []FieldSpec[T] {
	out := make([]FieldSpec[T], len(c.all))
	copy(out, c.all)
	return out
}

// Relevant returns the fields that participate in comparison, in order.
func (c *Catalog[T]) Relevant() []FieldSpec[T] {
	out := make([]FieldSpec[T], len(c.relevant))
	copy(out, c.relevant)
	return out
}

// IsRelevant reports whether the named field participates in comparison.
// Unknown names are not relevant.
func (c *Catalog[T]) IsRelevant(name string) bool {
	for _, f := range c.relevant {
		if f.Name == name {
			return true
		}
	}
	return false
}

// FieldNames returns the names of the relevant fields, in order.
func (c *Catalog[T]) FieldNames() []string {
	names := make([]string, len(c.relevant))
	for i, f := range c.relevant {
		names[i] = f.Name
	}
	return names
}

// Values reads every relevant field of e. Fields that cannot be read are
// returned as Unavailable together with a FieldError.
func (c *Catalog[T]) Values(e T, slot Slot) ([]Value, []FieldError) {
	vals := make([]Value, len(c.relevant))
	var errs []FieldError
	for i, f := range c.relevant {
		v, err := f.Get(e)
		if err != nil {
			errs = append(errs, FieldError{ID: c.key(e), Field: f.Name, Slot: slot, Err: err})
			v = Unavailable()
		}
		vals[i] = v
	}
	return vals, errs
}

// Equal reports whether a and b are field-equal: every relevant field yields
// equal values. Irrelevant fields are never consulted.
func (c *Catalog[T]) Equal(a, b T) bool {
	for _, f := range c.relevant {
		av, aerr := f.Get(a)
		bv, berr := f.Get(b)
		if aerr != nil {
			av = Unavailable()
		}
		if berr != nil {
			bv = Unavailable()
		}
		if !av.Equal(bv) {
			return false
		}
	}
	return true
}
