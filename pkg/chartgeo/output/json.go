// Package output serializes computed charts.
package output

import (
	"encoding/json"
)

// ToJSON serializes v, indenting with two spaces when pretty is set.
func ToJSON(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
