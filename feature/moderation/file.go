package moderation

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"moderation-diff/core/reconcile"
	"moderation-diff/core/utils"
	"moderation-diff/feature/attachments"

	"gopkg.in/yaml.v3"
)

// defaultRecordKind is used for record files that do not name their kind.
const defaultRecordKind = "record"

// attachmentFile is the on-disk layout of an attachment snapshot.
type attachmentFile struct {
	RequestID  string                   `yaml:"request_id"`
	DocumentID string                   `yaml:"document_id"`
	Mode       string                   `yaml:"mode"`
	State      string                   `yaml:"state"`
	Baseline   []attachments.Attachment `yaml:"baseline"`
	Additions  []attachments.Attachment `yaml:"additions"`
	Deletions  []attachments.Attachment `yaml:"deletions"`
}

// recordFile is the on-disk layout of a generic record snapshot.
type recordFile struct {
	Kind      string           `yaml:"kind"`
	Mode      string           `yaml:"mode"`
	State     string           `yaml:"state"`
	IDField   string           `yaml:"id_field"`
	Fields    []string         `yaml:"fields"`
	Ignore    []string         `yaml:"ignore"`
	Baseline  []map[string]any `yaml:"baseline"`
	Additions []map[string]any `yaml:"additions"`
	Deletions []map[string]any `yaml:"deletions"`
}

// ReadFile parses a snapshot file from disk. See ParseFile.
func ReadFile(path string) (Comparison, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file %s: %w", path, err)
	}
	return ParseFile(data)
}

// ParseFile parses a YAML or JSON snapshot.
//
// Files that declare "fields" describe generic records keyed by "id_field"
// (default "id"); all other files hold attachments.
func ParseFile(data []byte) (Comparison, error) {
	var probe struct {
		Fields []string `yaml:"fields"`
	}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}

	if len(probe.Fields) > 0 {
		var f recordFile
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
		}
		snap, err := f.snapshot()
		if err != nil {
			return nil, err
		}
		return snap, nil
	}

	var f attachmentFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	mode, err := fileMode(f.Mode, f.State)
	if err != nil {
		return nil, err
	}
	return &Snapshot{
		RequestID:  f.RequestID,
		DocumentID: f.DocumentID,
		Mode:       mode,
		Baseline:   f.Baseline,
		Additions:  f.Additions,
		Deletions:  f.Deletions,
	}, nil
}

// fileMode resolves the mode of a file. An explicit mode wins over the state.
func fileMode(mode, state string) (reconcile.Mode, error) {
	if mode != "" {
		m, err := reconcile.ParseMode(mode)
		if err != nil {
			return reconcile.ModeOpen, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
		}
		return m, nil
	}
	return State(state).Mode(), nil
}

func (f recordFile) snapshot() (*RecordSnapshot, error) {
	mode, err := fileMode(f.Mode, f.State)
	if err != nil {
		return nil, err
	}

	idField := f.IDField
	if idField == "" {
		idField = "id"
	}
	kind := f.Kind
	if kind == "" {
		kind = defaultRecordKind
	}

	seen := make(map[string]struct{}, len(f.Fields))
	for _, name := range f.Fields {
		if name == "" {
			return nil, fmt.Errorf("%w: empty field name", ErrInvalidSnapshot)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: field %q declared twice", ErrInvalidSnapshot, name)
		}
		seen[name] = struct{}{}
	}

	// The id field is always ignored.
	ignore := []string{idField}
	for _, name := range f.Ignore {
		if name != "" && !slices.Contains(ignore, name) {
			ignore = append(ignore, name)
		}
	}

	snap := &RecordSnapshot{
		Kind:   kind,
		Mode:   mode,
		Fields: f.Fields,
		Ignore: ignore,
	}
	if snap.Baseline, err = toRecords("baseline", f.Baseline, idField); err != nil {
		return nil, err
	}
	if snap.Additions, err = toRecords("additions", f.Additions, idField); err != nil {
		return nil, err
	}
	if snap.Deletions, err = toRecords("deletions", f.Deletions, idField); err != nil {
		return nil, err
	}
	return snap, nil
}

func toRecords(collection string, rows []map[string]any, idField string) ([]reconcile.Record, error) {
	records := make([]reconcile.Record, 0, len(rows))
	for i, row := range rows {
		raw, ok := row[idField]
		if !ok || raw == nil {
			return nil, fmt.Errorf("%w: %s[%d] has no %q", ErrInvalidSnapshot, collection, i, idField)
		}
		id := strings.TrimSpace(utils.ToString(raw))
		if id == "" {
			return nil, fmt.Errorf("%w: %s[%d] has an empty %q", ErrInvalidSnapshot, collection, i, idField)
		}

		fields := make(map[string]reconcile.Value, len(row))
		for name, v := range row {
			if name == idField {
				continue
			}
			fields[name] = ToValue(v)
		}
		records = append(records, reconcile.NewRecord(id, fields))
	}
	return records, nil
}

// ToValue converts a decoded YAML or JSON value to a reconcile.Value.
// Maps are rendered to their string form.
func ToValue(v any) reconcile.Value {
	switch val := v.(type) {
	case nil:
		return reconcile.Null()
	case string:
		return reconcile.String(val)
	case bool:
		return reconcile.Bool(val)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return reconcile.Int(utils.ToInt64(val))
	case float32, float64:
		return reconcile.Float(utils.ToFloat64(val))
	case time.Time:
		return reconcile.String(utils.ToString(val))
	case []any:
		items := make([]reconcile.Value, len(val))
		for i, item := range val {
			items[i] = ToValue(item)
		}
		return reconcile.List(items...)
	default:
		return reconcile.String(utils.ToString(val))
	}
}
