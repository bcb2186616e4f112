package dataset

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Load reads records from an .xlsx or .json file.
func Load(path string, opts SheetOptions) ([]map[string]interface{}, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return ReadSheet(path, opts)
	case ".json":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return ReadJSON(f)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedInput, filepath.Ext(path))
}

// ReadJSON decodes a JSON array of objects. Numbers are kept as json.Number
// so that ToNumber sees the exact literal.
func ReadJSON(r io.Reader) ([]map[string]interface{}, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var records []map[string]interface{}
	if err := dec.Decode(&records); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("decode records: %w", err)
	}
	return records, nil
}
