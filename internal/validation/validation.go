package validation

import (
	"strconv"
	"strings"
	"time"
)

type Kind int

const (
	String Kind = iota
	Numeric
	Integer
	Boolean
	Date
)

// Rule describes the constraints on a single field. Required rules must be
// present on create; on update they apply only when the field is supplied.
type Rule struct {
	Field    string
	Kind     Kind
	Required bool
	Min      *float64
}

func Min(v float64) *float64 {
	return &v
}

// Report collects every failed constraint, keyed by field name.
type Report struct {
	Fields map[string][]string `json:"errors"`
}

func (r *Report) Error() string {
	return "validation failed"
}

func (r *Report) add(field, code string) {
	if r.Fields == nil {
		r.Fields = make(map[string][]string)
	}
	r.Fields[field] = append(r.Fields[field], code)
}

// Validate checks data against rules and returns the coerced values for the
// recognized fields. Keys without a rule are dropped. All violations are
// collected before failing; a nil report means the data passed.
func Validate(data map[string]any, rules []Rule, update bool) (map[string]any, *Report) {
	out := make(map[string]any, len(rules))
	report := &Report{}

	for _, rule := range rules {
		raw, present := data[rule.Field]
		if !present || raw == nil {
			if rule.Required && !update {
				report.add(rule.Field, "required")
			}
			continue
		}

		value, ok := coerce(raw, rule.Kind)
		if !ok {
			report.add(rule.Field, kindCode(rule.Kind))
			continue
		}

		if rule.Min != nil {
			if n, isNum := asFloat(value); isNum && n < *rule.Min {
				report.add(rule.Field, minCode(*rule.Min))
				continue
			}
		}

		out[rule.Field] = value
	}

	if len(report.Fields) > 0 {
		return nil, report
	}
	return out, nil
}

func coerce(raw any, kind Kind) (any, bool) {
	switch kind {
	case Integer:
		return coerceInt(raw)
	case Numeric:
		return coerceFloat(raw)
	case Boolean:
		return coerceBool(raw)
	case Date:
		return coerceDate(raw)
	default:
		s, ok := raw.(string)
		return s, ok
	}
}

func coerceInt(raw any) (any, bool) {
	switch v := raw.(type) {
	case int:
		return int64(v), true
	case int64:
		return v, true
	case float64:
		if v != float64(int64(v)) {
			return nil, false
		}
		return int64(v), true
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return nil, false
		}
		return parsed, true
	default:
		return nil, false
	}
}

func coerceFloat(raw any) (any, bool) {
	switch v := raw.(type) {
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float64:
		return v, true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil, false
		}
		return parsed, true
	default:
		return nil, false
	}
}

func coerceBool(raw any) (any, bool) {
	switch v := raw.(type) {
	case bool:
		return v, true
	case float64:
		if v == 0 || v == 1 {
			return v == 1, true
		}
		return nil, false
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true":
			return true, true
		case "0", "false":
			return false, true
		default:
			return nil, false
		}
	default:
		return nil, false
	}
}

func coerceDate(raw any) (any, bool) {
	s, ok := raw.(string)
	if !ok {
		return nil, false
	}
	s = strings.TrimSpace(s)
	if parsed, err := time.Parse("2006-01-02", s); err == nil {
		return parsed.UTC(), true
	}
	if parsed, err := time.Parse(time.RFC3339, s); err == nil {
		return parsed.UTC(), true
	}
	return nil, false
}

func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case int64:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}

func kindCode(kind Kind) string {
	switch kind {
	case Integer:
		return "integer"
	case Numeric:
		return "numeric"
	case Boolean:
		return "boolean"
	case Date:
		return "date"
	default:
		return "string"
	}
}

func minCode(min float64) string {
	return "min:" + strconv.FormatFloat(min, 'f', -1, 64)
}
