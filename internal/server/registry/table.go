package registry

import (
	"strings"

	"github.com/dmitrijs2005/cameportal/internal/server/models"
)

// Table is one wholesale load of the roster feed.
type Table struct {
	// Records keep feed order.
	Records []models.EntityRecord
	// Diagnostics lists every skipped row.
	Diagnostics []models.RowDiagnostic
	// Delimiter is the separator that matched, or 0 when none did.
	Delimiter rune

	index map[string]int
}

func newTable() *Table {
	return &Table{index: make(map[string]int)}
}

func (t *Table) add(rec models.EntityRecord) bool {
	if _, dup := t.index[rec.Name]; dup {
		return false
	}
	t.index[rec.Name] = len(t.Records)
	t.Records = append(t.Records, rec)
	return true
}

func (t *Table) skip(line int, reason string) {
	t.Diagnostics = append(t.Diagnostics, models.RowDiagnostic{Line: line, Reason: reason})
}

// Len returns the number of entities.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Records)
}

// Skipped returns the number of rows left out of the table.
func (t *Table) Skipped() int {
	if t == nil {
		return 0
	}
	return len(t.Diagnostics)
}

// Lookup finds an entity by its exact, case-sensitive name.
func (t *Table) Lookup(name string) (models.EntityRecord, bool) {
	if t == nil {
		return models.EntityRecord{}, false
	}
	i, ok := t.index[name]
	if !ok {
		return models.EntityRecord{}, false
	}
	return t.Records[i], true
}

// Search returns entities whose name contains term, ignoring case.
// An empty term matches everything.
func (t *Table) Search(term string) []models.EntityRecord {
	if t == nil {
		return nil
	}
	term = strings.ToLower(strings.TrimSpace(term))
	out := make([]models.EntityRecord, 0, len(t.Records))
	for _, r := range t.Records {
		if term == "" || strings.Contains(strings.ToLower(r.Name), term) {
			out = append(out, r)
		}
	}
	return out
}
