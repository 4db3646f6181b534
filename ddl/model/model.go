package model

import (
	"strconv"
	"strings"
)

// TypeKind identifies one of the supported column types
type TypeKind int

const (
	Integer TypeKind = iota
	Timestamp
	Numeric
	Char
	Varchar
)

func (k TypeKind) String() string {
	switch k {
	case Integer:
		return "Integer"
	case Timestamp:
		return "Timestamp"
	case Numeric:
		return "Numeric"
	case Char:
		return "Char"
	case Varchar:
		return "Varchar"
	default:
		return "Unknown"
	}
}

// HasArgs reports whether the type takes a parenthesized argument list
func (k TypeKind) HasArgs() bool {
	return k == Numeric || k == Char || k == Varchar
}

// ColumnType is a column type together with its type arguments.
// Precision and Scale apply to Numeric, Length to Char and Varchar.
type ColumnType struct {
	Kind      TypeKind
	Precision uint64
	Scale     uint64
	Length    uint64
}

// SetArg stores the n-th type argument. Arguments past the ones the kind
// declares are dropped.
func (t *ColumnType) SetArg(n int, value uint64) {
	switch t.Kind {
	case Numeric:
		switch n {
		case 0:
			t.Precision = value
		case 1:
			t.Scale = value
		}
	case Char, Varchar:
		if n == 0 {
			t.Length = value
		}
	}
}

func (t ColumnType) String() string {
	switch t.Kind {
	case Numeric:
		return fmtArgs(t.Kind, t.Precision, t.Scale)
	case Char, Varchar:
		return fmtArgs(t.Kind, t.Length)
	default:
		return t.Kind.String()
	}
}

func fmtArgs(kind TypeKind, args ...uint64) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = strconv.FormatUint(a, 10)
	}
	return kind.String() + "(" + strings.Join(parts, ", ") + ")"
}

// Column represents a single column of a relation
type Column struct {
	Name string `json:"name"`
}

// Relation represents a parsed table definition
type Relation struct {
	Name    string   `json:"name"`
	Columns []Column `json:"columns"`
}

// NewRelation creates a relation without columns
func NewRelation(name string) *Relation {
	return &Relation{
		Name:    name,
		Columns: []Column{},
	}
}

// AddColumn appends a column, keeping declaration order
func (r *Relation) AddColumn(name string) {
	r.Columns = append(r.Columns, Column{Name: name})
}

// ColumnNames returns the column names in declaration order
func (r *Relation) ColumnNames() []string {
	names := make([]string, len(r.Columns))
	for i, c := range r.Columns {
		names[i] = c.Name
	}
	return names
}

// Schema represents a complete parsed DDL fragment
type Schema struct {
	Relations []*Relation `json:"relations"`
	Source    string      `json:"source,omitempty"`
}

// NewSchema creates an empty schema
func NewSchema() *Schema {
	return &Schema{
		Relations: []*Relation{},
	}
}

// AddRelation appends a relation to the schema
func (s *Schema) AddRelation(relation *Relation) {
	s.Relations = append(s.Relations, relation)
}

// LastRelation returns the most recently added relation, or nil
func (s *Schema) LastRelation() *Relation {
	if len(s.Relations) == 0 {
		return nil
	}
	return s.Relations[len(s.Relations)-1]
}

// Relation gets the first relation with the given name
func (s *Schema) Relation(name string) *Relation {
	for _, r := range s.Relations {
		if r.Name == name {
			return r
		}
	}
	return nil
}

// Clone returns a deep copy of the schema
func (s *Schema) Clone() *Schema {
	clone := &Schema{
		Relations: make([]*Relation, len(s.Relations)),
		Source:    s.Source,
	}
	for i, r := range s.Relations {
		columns := make([]Column, len(r.Columns))
		copy(columns, r.Columns)
		clone.Relations[i] = &Relation{Name: r.Name, Columns: columns}
	}
	return clone
}

func (s *Schema) String() string {
	var sb strings.Builder
	for _, r := range s.Relations {
		sb.WriteString(r.Name)
		sb.WriteString("(")
		sb.WriteString(strings.Join(r.ColumnNames(), ", "))
		sb.WriteString(")\n")
	}
	return sb.String()
}
