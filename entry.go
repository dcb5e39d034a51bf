package deltalog

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// Note classifies a changelog entry
type Note string

const (
	// NoteAdded marks a key or element present in latest but not prior
	NoteAdded = Note("Added")
	// NoteUpdated marks a value that changed between prior & latest
	NoteUpdated = Note("Updated")
	// NoteDeleted marks a key or element present in prior but not latest
	NoteDeleted = Note("Deleted")
)

// Entry records a single difference at one path. Deleted entries carry only
// OldVal, Added entries only NewVal, Updated entries both. attached values
// are redacted copies, never references into the caller's structures once a
// filter list is configured.
type Entry struct {
	Path   string      `json:"path"`
	OldVal interface{} `json:"oldVal,omitempty"`
	NewVal interface{} `json:"newVal,omitempty"`
	Note   Note        `json:"note"`
}

// String renders an entry in the compact "~ path: old => new" form
func (e *Entry) String() string {
	switch e.Note {
	case NoteAdded:
		return fmt.Sprintf("+ %s: %s", e.Path, renderValue(e.NewVal))
	case NoteDeleted:
		return fmt.Sprintf("- %s: %s", e.Path, renderValue(e.OldVal))
	default:
		return fmt.Sprintf("~ %s: %s => %s", e.Path, renderValue(e.OldVal), renderValue(e.NewVal))
	}
}

func renderValue(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}

// Changelog is an ordered list of entries. order is an observable contract:
// traversal order, prior-keyed differences first per level, then additions.
type Changelog []*Entry

// MarshalJSON implements json.Marshaler for the serializable output shape
func (cl Changelog) MarshalJSON() ([]byte, error) {
	return json.Marshal([]*Entry(cl))
}

// buildEntry constructs one output record, applying the comparer's filter
// list to whichever values the note carries
func (c *Comparer) buildEntry(priorVal, latestVal interface{}, path string, note Note) (*Entry, error) {
	e := &Entry{Path: path, Note: note}
	switch note {
	case NoteAdded:
		e.NewVal = redact(latestVal, c.filter)
	case NoteDeleted:
		e.OldVal = redact(priorVal, c.filter)
	case NoteUpdated:
		e.OldVal = redact(priorVal, c.filter)
		e.NewVal = redact(latestVal, c.filter)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownNote, note)
	}
	return e, nil
}
