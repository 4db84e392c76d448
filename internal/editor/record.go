package editor

import "encoding/json"

// Record is the entity-agnostic shape the editor works on. By convention it is
// built through FromStruct, so all numeric values are float64 (JSON numbers)
// and dirty comparison stays type-stable.
type Record map[string]any

// FromStruct converts any entity value into a Record.
func FromStruct(v any) (Record, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return r, nil
}

// ToStruct converts the record back into a typed entity value.
func (r Record) ToStruct(out any) error {
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

// Clone returns a shallow copy; field edits replace values wholesale, so a
// shallow copy is enough to keep original and working independent.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	next := make(Record, len(r))
	for k, v := range r {
		next[k] = v
	}
	return next
}
