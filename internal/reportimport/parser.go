package reportimport

import (
	"encoding/csv"
	"io"
	"strings"
)

// columns is the fixed layout of the daily offtake sheet. Data rows are
// keyed by these names; the offtaker name sits in column 2.
var columns = []string{
	"S/N",
	"S/N",
	"OFFTAKERS NAME",
	"DESIGN CAPACITY (MMscfd)",
	"NOMINATIONS (MMscfd)",
	"ALLOCATION (MMscfd) Weekdays",
	"OFFTAKE (MMscfd)",
	"INLET",
	"OUTLET",
	"REMARKS",
}

// headerPattern is the sheet's banner row. The pressure columns share one
// merged "PRESSURE (BAR)" cell, which exports with blank spill cells.
var headerPattern = []string{
	"S/N",
	"S/N",
	"OFFTAKERS NAME",
	"DESIGN CAPACITY (MMscfd)",
	"NOMINATIONS (MMscfd)",
	"ALLOCATION (MMscfd) Weekdays",
	"OFFTAKE (MMscfd)",
	"PRESSURE (BAR)",
	"",
	"REMARKS",
	"",
	"",
}

const nameColumn = 2

// Row is one kept report line, keyed by column name.
type Row map[string]string

// Parser extracts offtaker rows from an exported daily gas report.
// Everything before the recognized header row is ignored, and only rows
// whose offtaker name matches the allow-list (case-insensitively) are kept.
type Parser struct {
	offtakers map[string]struct{}
}

func NewParser(offtakers []string) *Parser {
	allowed := make(map[string]struct{}, len(offtakers))
	for _, name := range offtakers {
		allowed[strings.ToUpper(strings.TrimSpace(name))] = struct{}{}
	}
	return &Parser{offtakers: allowed}
}

func (p *Parser) Parse(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	rows := make([]Row, 0)
	headerFound := false

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if !headerFound {
			headerFound = isHeaderRow(record)
			continue
		}

		if len(record) <= nameColumn {
			continue
		}
		name := strings.TrimSpace(record[nameColumn])
		if _, ok := p.offtakers[strings.ToUpper(name)]; !ok {
			continue
		}

		row := make(Row, len(columns))
		for i, header := range columns {
			if i < len(record) && record[i] != "" {
				row[header] = record[i]
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func isHeaderRow(record []string) bool {
	if len(record) != len(headerPattern) {
		return false
	}
	for i, cell := range record {
		if normalize(cell) != headerPattern[i] {
			return false
		}
	}
	return true
}

// normalize collapses internal whitespace so cells survive the newline
// mangling of spreadsheet exports.
func normalize(cell string) string {
	return strings.Join(strings.Fields(cell), " ")
}
