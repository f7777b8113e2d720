package locator

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/meigma/wad"
)

var (
	// ErrSyntax is returned for a query that does not match the grammar.
	ErrSyntax = errors.New("locator: syntax error")

	// ErrInvalidName is returned for a name longer than 8 bytes or
	// containing non-ASCII bytes.
	ErrInvalidName = errors.New("locator: invalid lump name")

	// ErrNotFound is returned when a name is not present in the view.
	ErrNotFound = errors.New("locator: lump not found")
)

// Op narrows a view before the next part of a query is resolved.
type Op byte

const (
	// OpAfter continues from the named entry onward.
	OpAfter Op = '+'
	// OpWithin continues strictly between NAME_START and NAME_END.
	OpWithin Op = '/'
)

// Segment is a name followed by the operator applied to it.
type Segment struct {
	Name string
	Op   Op
}

// Query is a parsed locator query.
type Query struct {
	// Segments are applied left to right.
	Segments []Segment
	// Name is the final bare name. It is empty for index and scope queries.
	Name string
	// IsIndex reports an all-digit query; Index is then the entry index and
	// Segments and Name are ignored.
	IsIndex bool
	Index   int
}

// Parse parses a query.
//
// Names are checked when the query is resolved, not here.
func Parse(q string) (*Query, error) {
	trimmed := strings.TrimSpace(q)
	if isDigits(trimmed) {
		idx, err := strconv.Atoi(trimmed)
		if err != nil {
			return nil, fmt.Errorf("%w: index %q: %v", ErrSyntax, trimmed, err) //nolint:errorlint // sentinel carries the kind
		}
		return &Query{IsIndex: true, Index: idx}, nil
	}

	g, err := parser.ParseString("", q)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err) //nolint:errorlint // sentinel carries the kind
	}

	query := &Query{}
	name := g.Head
	for _, s := range g.Tail {
		query.Segments = append(query.Segments, Segment{Name: name, Op: Op(s.Op[0])})
		name = s.Name
	}
	query.Name = name
	return query, nil
}

// ParseScope parses a query prefix that ends in an operator, such as "f/"
// or "e1m1+f/". The returned query has no final name and is meant for
// Scope only.
func ParseScope(prefix string) (*Query, error) {
	p := strings.TrimSpace(prefix)
	if p == "" || (p[len(p)-1] != byte(OpAfter) && p[len(p)-1] != byte(OpWithin)) {
		return nil, fmt.Errorf("%w: scope %q must end with %c or %c", ErrSyntax, prefix, OpAfter, OpWithin)
	}
	// Complete the prefix with a throwaway final name.
	q, err := Parse(p + "_")
	if err != nil {
		return nil, err
	}
	q.Name = ""
	return q, nil
}

// Resolve parses q and resolves it against v.
func Resolve(v wad.View, q string) (wad.Entry, error) {
	query, err := Parse(q)
	if err != nil {
		return wad.Entry{}, err
	}
	return query.Resolve(v)
}

// Resolve returns the entry selected by the query in v.
func (q *Query) Resolve(v wad.View) (wad.Entry, error) {
	if q.IsIndex {
		return v.Entry(q.Index)
	}
	if q.Name == "" {
		return wad.Entry{}, fmt.Errorf("%w: query has no final name", ErrSyntax)
	}
	scope, err := q.Scope(v)
	if err != nil {
		return wad.Entry{}, err
	}
	idx, err := lookup(scope, q.Name)
	if err != nil {
		return wad.Entry{}, err
	}
	return scope.Entry(idx)
}

// Scope applies the query's segments to v and returns the narrowed view in
// which the final name is looked up. Index queries return v unchanged.
func (q *Query) Scope(v wad.View) (wad.View, error) {
	for _, s := range q.Segments {
		var err error
		switch s.Op {
		case OpAfter:
			v, err = after(v, s.Name)
		case OpWithin:
			v, err = within(v, s.Name)
		default:
			err = fmt.Errorf("%w: unknown operator %q", ErrSyntax, s.Op)
		}
		if err != nil {
			return wad.View{}, err
		}
	}
	return v, nil
}

// String returns the query in canonical upper-case form.
func (q *Query) String() string {
	if q.IsIndex {
		return strconv.Itoa(q.Index)
	}
	var b strings.Builder
	for _, s := range q.Segments {
		b.WriteString(strings.ToUpper(s.Name))
		b.WriteByte(byte(s.Op))
	}
	b.WriteString(strings.ToUpper(q.Name))
	return b.String()
}

// after narrows v to the entries from the first name onward.
func after(v wad.View, name string) (wad.View, error) {
	idx, err := lookup(v, name)
	if err != nil {
		return wad.View{}, err
	}
	return v.Slice(idx, v.Len())
}

// within narrows v to the entries strictly between name_START and name_END.
func within(v wad.View, name string) (wad.View, error) {
	start, err := lookup(v, name+"_START")
	if err != nil {
		return wad.View{}, err
	}
	end, err := lookup(v, name+"_END")
	if err != nil {
		return wad.View{}, err
	}
	if end < start {
		return wad.View{}, fmt.Errorf("%w: %s_END before %s_START", ErrNotFound, strings.ToUpper(name), strings.ToUpper(name))
	}
	return v.Slice(start+1, end)
}

// lookup converts name to an ID and finds it in v.
func lookup(v wad.View, name string) (int, error) {
	id, ok := wad.ParseID(name)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	idx, ok := v.IndexOf(id)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return idx, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
