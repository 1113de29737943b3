package valuefilter

import (
	"encoding/json"
	"errors"
	"fmt"
)

// MalformedSelectionError reports an encoded selection that is not a
// valid JSON array of strings. The component recovers from it by
// treating the selection as empty; callers that decode directly may
// want to surface it instead.
type MalformedSelectionError struct {
	Encoded string
	Err     error
}

func (e *MalformedSelectionError) Error() string {
	return fmt.Sprintf("malformed selection %q: %v", e.Encoded, e.Err)
}

func (e *MalformedSelectionError) Unwrap() error {
	return e.Err
}

// Selection is a set of value names with remembered insertion order.
// Membership checks are O(1); encoding walks the order slice.
type Selection struct {
	members map[string]bool
	order   []string
}

func NewSelection(names ...string) *Selection {
	s := &Selection{members: make(map[string]bool, len(names))}
	for _, n := range names {
		s.Add(n)
	}
	return s
}

// Add inserts name, keeping the first insertion position on repeats.
func (s *Selection) Add(name string) {
	if s.members[name] {
		return
	}
	s.members[name] = true
	s.order = append(s.order, name)
}

func (s *Selection) Remove(name string) {
	if !s.members[name] {
		return
	}
	delete(s.members, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *Selection) Has(name string) bool {
	return s != nil && s.members[name]
}

func (s *Selection) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Names returns the members in insertion order. The returned slice is
// a copy.
func (s *Selection) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, len(s.order))
	copy(names, s.order)
	return names
}

func (s *Selection) Clone() *Selection {
	return NewSelection(s.Names()...)
}

// DecodeSelection parses a JSON array-of-strings encoding. An empty
// string is the canonical encoding of the empty selection.
func DecodeSelection(encoded string) (*Selection, error) {
	if encoded == "" {
		return NewSelection(), nil
	}
	var names []string
	if err := json.Unmarshal([]byte(encoded), &names); err != nil {
		return nil, &MalformedSelectionError{Encoded: encoded, Err: err}
	}
	// JSON null unmarshals into a nil slice without error; only an
	// actual array counts as well-formed.
	if names == nil {
		return nil, &MalformedSelectionError{Encoded: encoded, Err: errors.New("not a JSON array")}
	}
	return NewSelection(names...), nil
}

// EncodeSelection serializes membership in insertion order. The order
// is not canonical: equivalent sets built in different sequences may
// encode differently, and consumers must compare by membership.
func EncodeSelection(s *Selection) string {
	names := s.Names()
	if names == nil {
		names = []string{}
	}
	// Marshal of a []string cannot fail.
	b, _ := json.Marshal(names)
	return string(b)
}

// DecodeCache memoizes DecodeSelection for a single encoded input.
// The component decodes on every render to answer "is this row
// selected"; prop updates usually carry the same string, so one slot
// is enough. A malformed input is cached as empty so it is not
// re-parsed every frame.
type DecodeCache struct {
	encoded string
	sel     *Selection
	err     error
	filled  bool
}

func (c *DecodeCache) Decode(encoded string) (*Selection, error) {
	if c.filled && c.encoded == encoded {
		return c.sel, c.err
	}
	sel, err := DecodeSelection(encoded)
	if err != nil {
		sel = NewSelection()
	}
	c.encoded = encoded
	c.sel = sel
	c.err = err
	c.filled = true
	return sel, err
}
