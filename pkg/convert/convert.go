// Package convert holds small conversions shared by the CLI and adapters.
package convert

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrNotNumeric is returned by SafeInt for values that have no integer form.
var ErrNotNumeric = errors.New("value is not numeric")

// BaseNameNoExt returns the last element of path without its final extension,
// so "/a/b/file.tar.gz" becomes "file.tar". Leading dots do not start an
// extension: ".bashrc" is returned unchanged.
func BaseNameNoExt(path string) string {
	if path == "" {
		return ""
	}
	base := filepath.Base(path)
	ext := filepath.Ext(strings.TrimLeft(base, "."))
	return strings.TrimSuffix(base, ext)
}

// SafeInt converts v to an int. A nil v yields a nil result and no error.
// Floats are truncated toward zero; strings must hold a base-10 integer,
// surrounding whitespace is ignored.
func SafeInt(v any) (*int, error) {
	var n int
	switch val := v.(type) {
	case nil:
		return nil, nil
	case int:
		n = val
	case int8:
		n = int(val)
	case int16:
		n = int(val)
	case int32:
		n = int(val)
	case int64:
		n = int(val)
	case uint:
		n = int(val)
	case uint8:
		n = int(val)
	case uint16:
		n = int(val)
	case uint32:
		n = int(val)
	case uint64:
		n = int(val)
	case float32:
		n = int(val)
	case float64:
		n = int(val)
	case json.Number:
		i, err := strconv.Atoi(val.String())
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrNotNumeric, val)
		}
		n = i
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrNotNumeric, val)
		}
		n = i
	default:
		return nil, fmt.Errorf("%w: %T", ErrNotNumeric, v)
	}
	return &n, nil
}
