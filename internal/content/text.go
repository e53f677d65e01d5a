package content

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Text is a scalar leaf of the content document. Documents written by hand
// often use bare numbers for values such as stats, so numbers and booleans
// are accepted and kept as their literal JSON text.
type Text string

func (t Text) String() string { return string(t) }

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
	case '{', '[':
		return fmt.Errorf("content: expected text value, got %s", kindOf(data[0]))
	default:
		*t = Text(data)
	}
	return nil
}

func kindOf(b byte) string {
	if b == '{' {
		return "object"
	}
	return "array"
}
