package reconcile

// Record is a dynamic entity: an id plus named values. It is used for entity
// kinds that have no Go struct, such as snapshots loaded from files.
type Record struct {
	ID     string
	Fields map[string]Value
}

// NewRecord returns a record holding a copy of fields.
func NewRecord(id string, fields map[string]Value) Record {
	cp := make(map[string]Value, len(fields))
	for k, v := range fields {
		cp[k] = v
	}
	return Record{ID: id, Fields: cp}
}

// Get returns the named value. A missing name is ErrFieldUnavailable.
func (r Record) Get(name string) (Value, error) {
	v, ok := r.Fields[name]
	if !ok {
		return Unavailable(), MissingField(name)
	}
	return v, nil
}

// RecordCatalog builds a catalog over records. Fields are relevant in the given
// order; names listed in ignored are declared but excluded from comparison.
func RecordCatalog(kind string, fields []string, ignored ...string) *Catalog[Record] {
	skip := make(map[string]struct{}, len(ignored))
	for _, name := range ignored {
		skip[name] = struct{}{}
	}

	specs := make([]FieldSpec[Record], 0, len(fields)+len(ignored))
	for _, name := range fields {
		if _, ok := skip[name]; ok {
			continue
		}
		specs = append(specs, recordField(name, true))
	}
	for _, name := range ignored {
		specs = append(specs, recordField(name, false))
	}

	return NewCatalog(kind, func(r Record) string { return r.ID }, specs...)
}

func recordField(name string, relevant bool) FieldSpec[Record] {
	return FieldSpec[Record]{
		Name:     name,
		Get:      func(r Record) (Value, error) { return r.Get(name) },
		Relevant: relevant,
	}
}
