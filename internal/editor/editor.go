// Package editor implements the generic record editor behind every entity
// page: one record open at a time, described by a declarative field list,
// persisted only through caller-supplied callbacks.
package editor

import (
	"fmt"
	"reflect"
	"strconv"
	"sync"
	"time"
)

// FieldType selects the input control rendered for a field.
type FieldType string

const (
	FieldText   FieldType = "text"
	FieldNumber FieldType = "number"
	FieldSelect FieldType = "select"
)

// Option is one selectable (value, label) pair of a select field.
type Option struct {
	Value string
	Label string
}

// Field describes one editable attribute of a record.
type Field struct {
	Key      string
	Label    string
	Type     FieldType
	Options  []Option
	ReadOnly bool
}

// PanelState is the single tagged state of the page panel stack. It replaces
// the add-dialog / drawer / confirm-delete boolean trio so that illegal
// combinations cannot be represented.
type PanelState string

const (
	PanelClosed           PanelState = "closed"
	PanelAdding           PanelState = "adding"
	PanelEditing          PanelState = "editing"
	PanelConfirmingDelete PanelState = "confirming-delete"
)

var panelTransitions = map[PanelState][]PanelState{
	PanelClosed:           {PanelAdding, PanelEditing},
	PanelAdding:           {PanelClosed},
	PanelEditing:          {PanelConfirmingDelete, PanelClosed},
	PanelConfirmingDelete: {PanelEditing, PanelClosed},
}

// CanTransition reports whether moving from s to the target state is legal.
func (s PanelState) CanTransition(to PanelState) bool {
	for _, allowed := range panelTransitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

// EditSession tracks one open record: an immutable snapshot taken when the
// editor opened, and a working copy carrying in-progress edits.
type EditSession struct {
	original Record
	working  Record
}

func newEditSession(r Record) *EditSession {
	return &EditSession{original: r.Clone(), working: r.Clone()}
}

// Original returns the snapshot taken when the session started.
func (s *EditSession) Original() Record {
	return s.original
}

// Working returns the record with in-progress edits applied.
func (s *EditSession) Working() Record {
	return s.working
}

// IsDirty reports whether the working copy differs from the snapshot.
func (s *EditSession) IsDirty() bool {
	return !reflect.DeepEqual(s.original, s.working)
}

// set replaces working with a copy holding the new value; the previous
// working map is never mutated.
func (s *EditSession) set(key string, value any) {
	next := s.working.Clone()
	next[key] = value
	s.working = next
}

// Editor presents and edits one record of an arbitrary entity through its
// field list. Persistence is fully delegated: the save callback receives the
// working record, the delete callback fires only after explicit confirmation,
// and the editor itself never decides whether either succeeded.
type Editor struct {
	mu         sync.Mutex
	fields     []Field
	onSave     func(Record)
	onDelete   func()
	state      PanelState
	session    *EditSession
	closeDelay time.Duration
	clearTimer *time.Timer
}

// EditorOption configures an Editor.
type EditorOption func(*Editor)

// WithCloseDelay overrides how long the session outlives Close. The delay
// keeps fields populated through the panel's exit animation.
func WithCloseDelay(d time.Duration) EditorOption {
	return func(e *Editor) { e.closeDelay = d }
}

// New constructs an editor over a field list and persistence callbacks.
func New(fields []Field, onSave func(Record), onDelete func(), opts ...EditorOption) *Editor {
	e := &Editor{
		fields:     fields,
		onSave:     onSave,
		onDelete:   onDelete,
		state:      PanelClosed,
		closeDelay: 300 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Fields returns the declarative field list driving the form.
func (e *Editor) Fields() []Field {
	return e.fields
}

// State returns the current panel state.
func (e *Editor) State() PanelState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Open begins an edit session over the record. A nil record is a no-op and
// the editor stays hidden.
func (e *Editor) Open(r Record) {
	if r == nil {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.clearTimer != nil {
		e.clearTimer.Stop()
		e.clearTimer = nil
	}
	e.session = newEditSession(r)
	e.state = PanelEditing
}

// OpenNew begins a session over a blank record for creating an entity.
// defaults pre-fills fields; nil means an empty form.
func (e *Editor) OpenNew(defaults Record) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.clearTimer != nil {
		e.clearTimer.Stop()
		e.clearTimer = nil
	}
	if defaults == nil {
		defaults = Record{}
	}
	e.session = newEditSession(defaults)
	e.state = PanelAdding
}

// Working returns the working record, or nil when no session is open.
func (e *Editor) Working() Record {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.session == nil {
		return nil
	}
	return e.session.Working()
}

// IsDirty reports whether the open record has unsaved edits.
func (e *Editor) IsDirty() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session != nil && e.session.IsDirty()
}

// FieldChange applies one edit to the working copy, coercing the value to the
// field's type. Unknown and read-only fields are ignored.
func (e *Editor) FieldChange(key string, value any) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session == nil {
		return
	}
	field, ok := e.fieldByKey(key)
	if !ok || field.ReadOnly {
		return
	}
	e.session.set(key, coerce(field.Type, value))
}

func (e *Editor) fieldByKey(key string) (Field, bool) {
	for _, f := range e.fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// coerce normalizes an input value per field type. Number fields turn
// unparsable input into 0 rather than rejecting it.
func coerce(t FieldType, value any) any {
	switch t {
	case FieldNumber:
		switch v := value.(type) {
		case float64:
			return v
		case float32:
			return float64(v)
		case int:
			return float64(v)
		case int64:
			return float64(v)
		case string:
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return float64(0)
			}
			return f
		default:
			return float64(0)
		}
	case FieldSelect, FieldText:
		if s, ok := value.(string); ok {
			return s
		}
		return fmt.Sprint(value)
	}
	return value
}

// CanSave reports whether the Save action is enabled. While editing, saving
// is only allowed if the record actually changed, so no-op writes never fire.
// A create form submits whatever it holds.
func (e *Editor) CanSave() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.canSaveLocked()
}

func (e *Editor) canSaveLocked() bool {
	if e.session == nil {
		return false
	}
	switch e.state {
	case PanelAdding:
		return true
	case PanelEditing:
		return e.session.IsDirty()
	}
	return false
}

// Save hands the working record to the save callback. The editor does not
// close itself; the caller decides whether the save succeeded and closes it.
// Returns false when saving is not currently allowed.
func (e *Editor) Save() bool {
	e.mu.Lock()
	if !e.canSaveLocked() {
		e.mu.Unlock()
		return false
	}
	working := e.session.Working().Clone()
	onSave := e.onSave
	e.mu.Unlock()

	if onSave != nil {
		onSave(working)
	}
	return true
}

// RequestDelete opens the confirmation sub-dialog. The delete callback is not
// invoked yet.
func (e *Editor) RequestDelete() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state.CanTransition(PanelConfirmingDelete) {
		e.state = PanelConfirmingDelete
	}
}

// CancelDelete dismisses the confirmation sub-dialog and returns to editing.
func (e *Editor) CancelDelete() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == PanelConfirmingDelete {
		e.state = PanelEditing
	}
}

// ConfirmDelete fires the delete callback exactly once per confirmation,
// then closes both the confirmation dialog and the editor.
func (e *Editor) ConfirmDelete() {
	e.mu.Lock()
	if e.state != PanelConfirmingDelete {
		e.mu.Unlock()
		return
	}
	onDelete := e.onDelete
	e.mu.Unlock()

	if onDelete != nil {
		onDelete()
	}
	e.Close()
}

// Close hides the editor. The session is cleared after a short delay so the
// fields don't blank out mid-transition.
func (e *Editor) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == PanelClosed {
		return
	}
	e.state = PanelClosed

	if e.closeDelay <= 0 {
		e.session = nil
		return
	}
	if e.clearTimer != nil {
		e.clearTimer.Stop()
	}
	e.clearTimer = time.AfterFunc(e.closeDelay, func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		if e.state == PanelClosed {
			e.session = nil
		}
		e.clearTimer = nil
	})
}
