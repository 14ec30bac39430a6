package formfield

import (
	"encoding/json"
	"errors"
)

// Key is the request field carrying JSON-encoded dynamic form answers.
const Key = "form_field_answers"

var ErrInvalidAnswers = errors.New("invalid form field answers")

type Answer struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

// Merge overlays decoded {key, value} pairs onto data. The answers win for
// keys that also appear directly. A malformed payload aborts the whole
// operation; nothing falls through to defaults.
func Merge(data map[string]any) (map[string]any, error) {
	raw, ok := data[Key]
	if !ok {
		return data, nil
	}

	encoded, ok := raw.(string)
	if !ok {
		return nil, ErrInvalidAnswers
	}

	var answers []Answer
	if err := json.Unmarshal([]byte(encoded), &answers); err != nil {
		return nil, ErrInvalidAnswers
	}

	merged := make(map[string]any, len(data)+len(answers))
	for k, v := range data {
		if k == Key {
			continue
		}
		merged[k] = v
	}
	for _, a := range answers {
		merged[a.Key] = a.Value
	}
	return merged, nil
}
