package filter

import (
	"strings"

	"gorm.io/gorm"
)

const (
	fromSuffix = "_from"
	toSuffix   = "_to"
)

// Definition declares the filterable surface of one table: columns that
// accept equality filters and date/timestamp columns that additionally
// accept <column>_from / <column>_to range filters. Filter keys outside the
// definition are dropped without error.
type Definition struct {
	columns map[string]struct{}
	ranges  map[string]struct{}
}

func NewDefinition(columns, ranges []string) Definition {
	d := Definition{
		columns: make(map[string]struct{}, len(columns)),
		ranges:  make(map[string]struct{}, len(ranges)),
	}
	for _, c := range columns {
		d.columns[c] = struct{}{}
	}
	for _, c := range ranges {
		d.ranges[c] = struct{}{}
	}
	return d
}

// Apply adds a WHERE clause for every recognized filter key. Range filters
// compare the date portion of the column so a bare date matches the whole
// day regardless of the stored time.
func (d Definition) Apply(stmt *gorm.DB, filters map[string]string) *gorm.DB {
	for key, value := range filters {
		if col, ok := d.rangeColumn(key, fromSuffix); ok {
			stmt = stmt.Where("DATE("+col+") >= DATE(?)", value)
			continue
		}
		if col, ok := d.rangeColumn(key, toSuffix); ok {
			stmt = stmt.Where("DATE("+col+") <= DATE(?)", value)
			continue
		}
		if _, ok := d.columns[key]; ok {
			stmt = stmt.Where(key+" = ?", value)
		}
	}
	return stmt
}

func (d Definition) rangeColumn(key, suffix string) (string, bool) {
	if !strings.HasSuffix(key, suffix) {
		return "", false
	}
	col := strings.TrimSuffix(key, suffix)
	_, ok := d.ranges[col]
	return col, ok
}
