// Package validation checks request parameters before any provider call is made.
package validation

import (
	"strings"
)

// MissingParamsError reports every required parameter that was absent from a
// request. It is always produced before a provider call is attempted.
type MissingParamsError struct {
	Missing []string
}

func (e *MissingParamsError) Error() string {
	return "Missing required parameters: " + strings.Join(e.Missing, ", ")
}

// CheckRequired verifies that every name in required is present in params with
// a usable value. A parameter counts as missing when the key is absent, the
// value is nil, or the value is an empty string. All missing names are
// collected into a single MissingParamsError rather than failing on the first.
func CheckRequired(params map[string]any, required []string) error {
	var missing []string
	for _, name := range required {
		value, ok := params[name]
		if !ok || value == nil {
			missing = append(missing, name)
			continue
		}
		if s, isString := value.(string); isString && s == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &MissingParamsError{Missing: missing}
	}
	return nil
}
