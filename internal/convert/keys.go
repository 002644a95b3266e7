// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"strconv"
	"time"
)

// childPath returns the dotted location of key under parent, for error messages.
func childPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}

// indexPath returns the location of element i under parent.
func indexPath(parent string, i int) string {
	return parent + "[" + strconv.Itoa(i) + "]"
}

// mapKey renders a decoded mapping key as a string. YAML allows scalar keys
// of any type; JSON and TOML only have string keys.
func mapKey(k any, path string) (string, error) {
	switch t := k.(type) {
	case string:
		return t, nil
	case nil:
		return "null", nil
	case bool:
		return strconv.FormatBool(t), nil
	case int:
		return strconv.Itoa(t), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case uint64:
		return strconv.FormatUint(t, 10), nil
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64), nil
	case time.Time:
		return t.Format(time.RFC3339Nano), nil
	}
	return "", unsupported(path, "mapping key of type %T", k)
}
