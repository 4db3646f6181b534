// File: migration/diff.go
package migration

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dangerclosesec/schemagen/ddl/model"
)

// SchemaDiff represents the differences between two schemas
type SchemaDiff struct {
	AddedRelations    []string
	RemovedRelations  []string
	ModifiedRelations map[string]*RelationDiff
	OldOrder          []string // set when the shared relations changed position
	NewOrder          []string
}

// RelationDiff represents the differences between two versions of a relation
type RelationDiff struct {
	AddedColumns   []string
	RemovedColumns []string
	OldOrder       []string // set when the shared columns changed position
	NewOrder       []string
}

// GenerateDiff generates a diff between two schemas. Relations are matched
// by name and occurrence: a second `A` in a schema is keyed "A#2" and only
// ever compared with the second `A` of the other schema.
func GenerateDiff(oldSchema, newSchema *model.Schema) *SchemaDiff {
	diff := &SchemaDiff{
		ModifiedRelations: make(map[string]*RelationDiff),
	}

	oldKeys, oldRelations := indexRelations(oldSchema)
	newKeys, newRelations := indexRelations(newSchema)

	var oldShared, newShared []string

	// Find added relations and compare common ones
	for _, key := range newKeys {
		oldRelation, ok := oldRelations[key]
		if !ok {
			diff.AddedRelations = append(diff.AddedRelations, key)
			continue
		}
		newShared = append(newShared, key)

		relationDiff := compareRelationColumns(oldRelation, newRelations[key])
		if !relationDiff.IsEmpty() {
			diff.ModifiedRelations[key] = relationDiff
		}
	}

	// Find removed relations
	for _, key := range oldKeys {
		if _, ok := newRelations[key]; !ok {
			diff.RemovedRelations = append(diff.RemovedRelations, key)
		} else {
			oldShared = append(oldShared, key)
		}
	}

	// The catalog stores relations by position
	if !sameOrder(oldShared, newShared) {
		diff.OldOrder = oldShared
		diff.NewOrder = newShared
	}

	sort.Strings(diff.AddedRelations)
	sort.Strings(diff.RemovedRelations)

	return diff
}

// indexRelations keys every relation of schema by name and occurrence,
// returning the keys in schema order
func indexRelations(schema *model.Schema) ([]string, map[string]*model.Relation) {
	relations := make(map[string]*model.Relation)
	if schema == nil {
		return nil, relations
	}

	seen := make(map[string]int)
	keys := make([]string, 0, len(schema.Relations))
	for _, r := range schema.Relations {
		seen[r.Name]++
		key := r.Name
		if n := seen[r.Name]; n > 1 {
			key = fmt.Sprintf("%s#%d", r.Name, n)
		}
		keys = append(keys, key)
		relations[key] = r
	}
	return keys, relations
}

func sameOrder(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// compareRelationColumns compares the columns of two relations
func compareRelationColumns(oldRelation, newRelation *model.Relation) *RelationDiff {
	diff := &RelationDiff{}

	oldColumns := make(map[string]bool)
	newColumns := make(map[string]bool)

	for _, c := range oldRelation.Columns {
		oldColumns[c.Name] = true
	}
	for _, c := range newRelation.Columns {
		newColumns[c.Name] = true
	}

	var oldShared, newShared []string
	for _, c := range newRelation.Columns {
		if !oldColumns[c.Name] {
			diff.AddedColumns = append(diff.AddedColumns, c.Name)
		} else {
			newShared = append(newShared, c.Name)
		}
	}
	for _, c := range oldRelation.Columns {
		if !newColumns[c.Name] {
			diff.RemovedColumns = append(diff.RemovedColumns, c.Name)
		} else {
			oldShared = append(oldShared, c.Name)
		}
	}

	// Column order determines field order downstream
	if !sameOrder(oldShared, newShared) {
		diff.OldOrder = oldShared
		diff.NewOrder = newShared
	}

	return diff
}

// IsEmpty returns true if the diff is empty
func (d *RelationDiff) IsEmpty() bool {
	return len(d.AddedColumns) == 0 &&
		len(d.RemovedColumns) == 0 &&
		d.OldOrder == nil
}

// String returns a string representation of the schema diff
func (d *SchemaDiff) String() string {
	var sb strings.Builder

	sb.WriteString("Schema Changes:\n\n")

	if len(d.AddedRelations) > 0 {
		sb.WriteString("Added Relations:\n")
		for _, relation := range d.AddedRelations {
			sb.WriteString(fmt.Sprintf("  + %s\n", relation))
		}
		sb.WriteString("\n")
	}

	if len(d.RemovedRelations) > 0 {
		sb.WriteString("Removed Relations:\n")
		for _, relation := range d.RemovedRelations {
			sb.WriteString(fmt.Sprintf("  - %s\n", relation))
		}
		sb.WriteString("\n")
	}

	if d.OldOrder != nil {
		sb.WriteString("Relation Order:\n")
		sb.WriteString(fmt.Sprintf("  ~ (%s) -> (%s)\n",
			strings.Join(d.OldOrder, ", "), strings.Join(d.NewOrder, ", ")))
		sb.WriteString("\n")
	}

	if len(d.ModifiedRelations) > 0 {
		names := make([]string, 0, len(d.ModifiedRelations))
		for name := range d.ModifiedRelations {
			names = append(names, name)
		}
		sort.Strings(names)

		sb.WriteString("Modified Relations:\n")
		for _, name := range names {
			diff := d.ModifiedRelations[name]
			sb.WriteString(fmt.Sprintf("  * %s:\n", name))

			for _, column := range diff.AddedColumns {
				sb.WriteString(fmt.Sprintf("      + %s\n", column))
			}
			for _, column := range diff.RemovedColumns {
				sb.WriteString(fmt.Sprintf("      - %s\n", column))
			}
			if diff.OldOrder != nil {
				sb.WriteString(fmt.Sprintf("      ~ order (%s) -> (%s)\n",
					strings.Join(diff.OldOrder, ", "), strings.Join(diff.NewOrder, ", ")))
			}
		}
	}

	if d.IsEmpty() {
		sb.WriteString("No changes detected.\n")
	}

	return sb.String()
}

// IsEmpty returns true if the diff contains no changes
func (d *SchemaDiff) IsEmpty() bool {
	return len(d.AddedRelations) == 0 &&
		len(d.RemovedRelations) == 0 &&
		len(d.ModifiedRelations) == 0 &&
		d.OldOrder == nil
}
