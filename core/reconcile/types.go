package reconcile

import (
	"fmt"
	"strings"
)

// Mode is the state of the moderation request a reconciliation is rendered for.
type Mode int

const (
	// ModeOpen means the request is still pending: the baseline has not absorbed
	// the change and still holds the live values of entities proposed for deletion.
	ModeOpen Mode = iota
	// ModeClosed means the request was accepted or rejected: the deletions
	// collection is the authoritative record of what was removed.
	ModeClosed
)

// String returns "open" or "closed".
func (m Mode) String() string {
	switch m {
	case ModeOpen:
		return "open"
	case ModeClosed:
		return "closed"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if m != ModeOpen && m != ModeClosed {
		return nil, fmt.Errorf("invalid moderation mode %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ParseMode parses "open" or "closed" (case-insensitive).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "open":
		return ModeOpen, nil
	case "closed":
		return ModeClosed, nil
	default:
		return ModeOpen, fmt.Errorf("invalid moderation mode %q (want open or closed)", s)
	}
}

// BaselineState describes how the baseline side of a changed entity was resolved.
type BaselineState string

const (
	// BaselinePresent means the baseline holds the entity.
	BaselinePresent BaselineState = "present"
	// BaselineDeleted means the entity is missing from the baseline of an open
	// request. Current values are rendered as the Deleted marker.
	BaselineDeleted BaselineState = "deleted"
	// BaselineEmpty means the entity is missing from the baseline of a closed
	// request. Current values are read from an empty entity.
	BaselineEmpty BaselineState = "empty"
)

// DiffRow compares one field of a changed entity across the three snapshots.
type DiffRow struct {
	// Field is the catalog field name.
	Field string `json:"field"`

	// Current is the baseline value, or the Deleted marker.
	Current Value `json:"current"`

	// Former is the value recorded in the deletions collection.
	Former Value `json:"former"`

	// Suggested is the value recorded in the additions collection.
	Suggested Value `json:"suggested"`
}

// Changed reports whether the suggested value differs from the current one.
// Presenters use it for highlighting; the engine never drops rows.
func (r DiffRow) Changed() bool {
	return !r.Current.Equal(r.Suggested)
}

// Entry is an added or deleted entity with its relevant field values in catalog order.
type Entry struct {
	ID     string  `json:"id"`
	Values []Value `json:"values"`
}

// Change is the field-level diff of one changed entity.
type Change struct {
	ID       string        `json:"id"`
	Baseline BaselineState `json:"baseline"`
	Rows     []DiffRow     `json:"rows"`
}

// Result is the outcome of a reconciliation. Unchanged entities are not reported.
type Result struct {
	// Kind is the entity kind of the catalog used.
	Kind string `json:"kind"`

	// Mode is the moderation mode the result was computed for.
	Mode Mode `json:"mode"`

	// Fields are the relevant field names, matching Entry.Values positions.
	Fields []string `json:"fields"`

	// Added lists entities only present in the additions, in additions order.
	Added []Entry `json:"added"`

	// Deleted lists entities shown as removed, in the order of their
	// authoritative source (deletions when closed, baseline when open).
	Deleted []Entry `json:"deleted"`

	// Changed lists edited entities, in deletions order.
	Changed []Change `json:"changed"`

	// Warnings lists fields that could not be read.
	Warnings []FieldError `json:"warnings,omitempty"`
}

// AddedIDs returns the ids of the added entities, in order.
func (r *Result) AddedIDs() []string { return entryIDs(r.Added) }

// DeletedIDs returns the ids of the deleted entities, in order.
func (r *Result) DeletedIDs() []string { return entryIDs(r.Deleted) }

// ChangedIDs returns the ids of the changed entities, in order.
func (r *Result) ChangedIDs() []string {
	ids := make([]string, len(r.Changed))
	for i, c := range r.Changed {
		ids[i] = c.ID
	}
	return ids
}

// HasChanges reports whether anything was added, deleted or changed.
func (r *Result) HasChanges() bool {
	return len(r.Added) > 0 || len(r.Deleted) > 0 || len(r.Changed) > 0
}

// Summary returns aggregate counts for the result.
func (r *Result) Summary() Summary {
	return Summary{
		Kind:     r.Kind,
		Mode:     r.Mode,
		Added:    len(r.Added),
		Deleted:  len(r.Deleted),
		Changed:  len(r.Changed),
		Warnings: len(r.Warnings),
	}
}

// Summary provides aggregate statistics for a result.
type Summary struct {
	Kind     string `json:"kind"`
	Mode     Mode   `json:"mode"`
	Added    int    `json:"added"`
	Deleted  int    `json:"deleted"`
	Changed  int    `json:"changed"`
	Warnings int    `json:"warnings"`
}

// String returns a one-line human readable summary.
func (s Summary) String() string {
	if s.Added+s.Deleted+s.Changed == 0 {
		return fmt.Sprintf("no changes in %ss (%s)", s.Kind, s.Mode)
	}
	return fmt.Sprintf("%ss (%s): %d added, %d deleted, %d changed", s.Kind, s.Mode, s.Added, s.Deleted, s.Changed)
}

func entryIDs(entries []Entry) []string {
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	return ids
}
