package reconcile

// Collection names used in DuplicateIDError.
const (
	CollectionBaseline  = "baseline"
	CollectionAdditions = "additions"
	CollectionDeletions = "deletions"
)

// Reconcile classifies the entities of a moderation request.
//
// An id present in both additions and deletions is an edit of one entity and
// is reported as Changed, unless the suggested version is field-equal to the
// baseline. Remaining additions are Added. Remaining deletions are Deleted;
// in open mode only those still present in the baseline are kept. Entities
// mentioned in neither additions nor deletions are Unchanged and omitted.
//
// Reconcile does not retain or modify its inputs. It fails only when one of
// the collections holds a duplicate id.
func Reconcile[T any](c *Catalog[T], baseline, additions, deletions []T, mode Mode) (*Result, error) {
	b, err := Index(CollectionBaseline, baseline, c.key)
	if err != nil {
		return nil, err
	}
	a, err := Index(CollectionAdditions, additions, c.key)
	if err != nil {
		return nil, err
	}
	d, err := Index(CollectionDeletions, deletions, c.key)
	if err != nil {
		return nil, err
	}

	common := d.filter(a.Has)
	isCommon := make(map[string]struct{}, len(common))
	for _, id := range common {
		isCommon[id] = struct{}{}
	}
	notCommon := func(id string) bool {
		_, ok := isCommon[id]
		return !ok
	}

	result := &Result{
		Kind:    c.kind,
		Mode:    mode,
		Fields:  c.FieldNames(),
		Added:   []Entry{},
		Deleted: []Entry{},
		Changed: []Change{},
	}

	for _, id := range a.filter(notCommon) {
		e, _ := a.Get(id)
		result.Added = appendEntry(result, result.Added, c, id, e)
	}

	deleted := d.filter(notCommon)
	if mode == ModeClosed {
		for _, id := range deleted {
			e, _ := d.Get(id)
			result.Deleted = appendEntry(result, result.Deleted, c, id, e)
		}
	} else {
		// Deletions that already left the baseline are not offered again; the
		// baseline still holds the live values of the rest.
		pending := make(map[string]struct{}, len(deleted))
		for _, id := range deleted {
			pending[id] = struct{}{}
		}
		for _, id := range b.filter(func(id string) bool { _, ok := pending[id]; return ok }) {
			e, _ := b.Get(id)
			result.Deleted = appendEntry(result, result.Deleted, c, id, e)
		}
	}

	for _, id := range common {
		old := resolveBaseline(b, id, mode)
		suggested, _ := a.Get(id)
		if equalToBaseline(c, old, suggested) {
			continue
		}
		former, _ := d.Get(id)
		rows, errs := Diff(c, id, old, former, suggested)
		result.Changed = append(result.Changed, Change{ID: id, Baseline: old.State, Rows: rows})
		result.Warnings = append(result.Warnings, errs...)
	}

	return result, nil
}

// appendEntry reads the relevant values of e into an Entry, collecting field errors.
func appendEntry[T any](r *Result, entries []Entry, c *Catalog[T], id string, e T) []Entry {
	vals, errs := c.Values(e, SlotEntry)
	r.Warnings = append(r.Warnings, errs...)
	return append(entries, Entry{ID: id, Values: vals})
}
