package reconcile

// Baseline is the resolved baseline side of a changed entity.
type Baseline[T any] struct {
	State  BaselineState
	Entity T
}

// Present wraps an entity found in the baseline.
func Present[T any](e T) Baseline[T] {
	return Baseline[T]{State: BaselinePresent, Entity: e}
}

// resolveBaseline picks the baseline side for a common id according to mode.
func resolveBaseline[T any](b *Keyed[T], id string, mode Mode) Baseline[T] {
	if e, ok := b.Get(id); ok {
		return Present(e)
	}
	var zero T
	if mode == ModeOpen {
		return Baseline[T]{State: BaselineDeleted, Entity: zero}
	}
	return Baseline[T]{State: BaselineEmpty, Entity: zero}
}

// equalToBaseline reports whether the suggested entity is a no-op against the baseline.
// A deleted baseline never matches.
func equalToBaseline[T any](c *Catalog[T], old Baseline[T], suggested T) bool {
	if old.State == BaselineDeleted {
		return false
	}
	for _, f := range c.relevant {
		cur, err := current(f, old)
		if err != nil {
			cur = Unavailable()
		}
		sv, err := f.Get(suggested)
		if err != nil {
			sv = Unavailable()
		}
		if !cur.Equal(sv) {
			return false
		}
	}
	return true
}

// current reads f from the baseline side. The synthesized empty entity holds
// every field, so a field it cannot supply reads as Null.
func current[T any](f FieldSpec[T], old Baseline[T]) (Value, error) {
	v, err := f.Get(old.Entity)
	if err != nil && old.State == BaselineEmpty {
		return Null(), nil
	}
	return v, err
}

// Diff produces one row per relevant field of c, in catalog order, comparing
// the baseline, the former (deleted) snapshot and the suggested (added)
// snapshot of the entity id. Rows are emitted whether or not the field changed.
// Fields that cannot be read are set to Unavailable and reported as FieldErrors.
func Diff[T any](c *Catalog[T], id string, old Baseline[T], former, suggested T) ([]DiffRow, []FieldError) {
	fields := c.relevant
	rows := make([]DiffRow, 0, len(fields))
	var errs []FieldError

	read := func(f FieldSpec[T], e T, slot Slot) Value {
		v, err := f.Get(e)
		if err != nil {
			errs = append(errs, FieldError{ID: id, Field: f.Name, Slot: slot, Err: err})
			return Unavailable()
		}
		return v
	}

	for _, f := range fields {
		row := DiffRow{Field: f.Name}
		if old.State == BaselineDeleted {
			row.Current = Deleted()
		} else if v, err := current(f, old); err != nil {
			errs = append(errs, FieldError{ID: id, Field: f.Name, Slot: SlotCurrent, Err: err})
			row.Current = Unavailable()
		} else {
			row.Current = v
		}
		row.Former = read(f, former, SlotFormer)
		row.Suggested = read(f, suggested, SlotSuggested)
		rows = append(rows, row)
	}
	return rows, errs
}
