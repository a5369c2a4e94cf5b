// Package registry loads the authoritative roster feed: a delimited file
// describing every member entity and its compliance flags. The feed is
// read wholesale on every access and its schema is not trusted.
package registry

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/dmitrijs2005/cameportal/internal/common"
	"github.com/dmitrijs2005/cameportal/internal/logging"
	"github.com/dmitrijs2005/cameportal/internal/server/models"
	"github.com/dmitrijs2005/cameportal/internal/timex"
)

// Delimiters are tried in this order.
var Delimiters = []rune{',', ';', '\t', '|'}

// readFile is a seam for tests.
var readFile = os.ReadFile

// Importer reads the roster feed from a file path.
type Importer struct {
	path string
	log  logging.Logger
}

func NewImporter(path string, log logging.Logger) *Importer {
	return &Importer{path: path, log: log.With("module", "registry")}
}

// Path returns the feed location.
func (i *Importer) Path() string {
	return i.path
}

// Load reads and parses the feed. A missing file is an empty table and no
// error; any other read failure is an empty table and
// common.ErrorStorageUnavailable. Row-level problems never fail the load.
func (i *Importer) Load(ctx context.Context) (*Table, error) {
	if err := ctx.Err(); err != nil {
		return newTable(), err
	}

	data, err := readFile(i.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			i.log.Warn(ctx, "roster feed not found, using empty table", "path", i.path)
			return newTable(), nil
		}
		i.log.Error(ctx, "roster feed unreadable", "path", i.path, "error", err)
		return newTable(), fmt.Errorf("%w: read roster: %v", common.ErrorStorageUnavailable, err)
	}

	t := Parse(data)
	for _, d := range t.Diagnostics {
		i.log.Warn(ctx, "roster row skipped", "line", d.Line, "reason", d.Reason)
	}
	i.log.Debug(ctx, "roster loaded", "entities", t.Len(), "skipped", t.Skipped(), "delimiter", string(t.Delimiter))
	return t, nil
}

// Parse builds a Table from raw feed bytes.
func Parse(data []byte) *Table {
	if len(bytes.TrimSpace(data)) == 0 {
		return newTable()
	}

	for _, d := range Delimiters {
		r := newReader(data, d)
		header, err := r.Read()
		if err != nil {
			continue
		}
		cols := mapHeader(header)
		if _, ok := cols[fieldName]; !ok {
			continue
		}
		t := newTable()
		t.Delimiter = d
		readRows(r, len(header), cols, t)
		return t
	}

	t := newTable()
	t.skip(1, "no delimiter produced a header with an entity name column")
	return t
}

func newReader(data []byte, delim rune) *csv.Reader {
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = delim
	r.FieldsPerRecord = -1
	return r
}

// mapHeader returns the column index of each recognized field. When two
// columns map to the same field the first wins.
func mapHeader(header []string) map[field]int {
	cols := make(map[field]int)
	for i, h := range header {
		f, ok := aliases[normalizeHeader(h)]
		if !ok {
			continue
		}
		if _, seen := cols[f]; !seen {
			cols[f] = i
		}
	}
	return cols
}

func readRows(r *csv.Reader, width int, cols map[field]int, t *Table) {
	for {
		row, err := r.Read()
		if err == io.EOF {
			return
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				t.skip(pe.StartLine, fmt.Sprintf("%v: %v", common.ErrorMalformedFeedRow, pe.Err))
				continue
			}
			line, _ := r.FieldPos(0)
			t.skip(line, fmt.Sprintf("%v: %v", common.ErrorMalformedFeedRow, err))
			return
		}
		line, _ := r.FieldPos(0)

		if len(row) != width {
			t.skip(line, fmt.Sprintf("%v: expected %d fields, got %d", common.ErrorMalformedFeedRow, width, len(row)))
			continue
		}

		rec := toRecord(row, cols)
		if rec.Name == "" {
			t.skip(line, fmt.Sprintf("%v: empty entity name", common.ErrorMalformedFeedRow))
			continue
		}
		if !t.add(rec) {
			t.skip(line, fmt.Sprintf("%v: duplicate entity %q", common.ErrorMalformedFeedRow, rec.Name))
		}
	}
}

func toRecord(row []string, cols map[field]int) models.EntityRecord {
	get := func(f field) string {
		i, ok := cols[f]
		if !ok {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	return models.EntityRecord{
		Name:           get(fieldName),
		MemberSince:    timex.ParseDayMonthYear(get(fieldMemberSince)),
		DirectiveBoard: normalizeYesNo(get(fieldDirectiveBoard)),
		CUIT:           get(fieldCUIT),
		CUITStatus:     get(fieldCUITStatus),
		Address:        get(fieldAddress),
		City:           get(fieldCity),
		Province:       get(fieldProvince),
		President:      get(fieldPresident),
		MandateExpiry:  timex.ParseDayMonthYear(get(fieldMandateExpiry)),
		IGJ:            normalizeYesNo(get(fieldIGJ)),
		AFIP:           normalizeYesNo(get(fieldAFIP)),
		Estatuto:       normalizeYesNo(get(fieldEstatuto)),
		RosterExpiry:   timex.ParseDayMonthYear(get(fieldRosterExpiry)),
		RosterStatus:   normalizeRosterStatus(get(fieldRosterStatus)),
	}
}
