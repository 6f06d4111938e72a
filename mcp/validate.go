package mcp

import (
	"fmt"
	"math"
	"regexp"
	"sync"

	"github.com/hyperengineering/roster"
)

// patterns caches compiled schema patterns across dispatches.
var patterns sync.Map // pattern string -> *regexp.Regexp

func matchPattern(pattern, s string) bool {
	if re, ok := patterns.Load(pattern); ok {
		return re.(*regexp.Regexp).MatchString(s)
	}
	re := regexp.MustCompile(pattern)
	patterns.Store(pattern, re)
	return re.MatchString(s)
}

// ArgumentError reports a tool argument that failed validation.
// The message always names the offending field.
type ArgumentError struct {
	Field  string
	Reason string
}

func (e *ArgumentError) Error() string {
	return e.Field + " " + e.Reason
}

// ValidateArgs checks raw arguments against a tool schema and returns the
// validated subset. Unknown arguments are ignored for forward compatibility.
// Empty string values for optional fields are treated as absent; for
// required fields they fail validation.
func ValidateArgs(schema []Field, args map[string]any) (map[string]any, error) {
	validated := make(map[string]any, len(schema))

	for _, f := range schema {
		raw, present := args[f.Name]
		if !present || raw == nil {
			if f.Required {
				return nil, &ArgumentError{Field: f.Name, Reason: "is required"}
			}
			continue
		}

		switch f.Type {
		case TypeInteger:
			n, ok := intValue(raw)
			if !ok {
				return nil, &ArgumentError{Field: f.Name, Reason: "must be an integer"}
			}
			if f.Max > 0 && (n < f.Min || n > f.Max) {
				return nil, &ArgumentError{
					Field:  f.Name,
					Reason: fmt.Sprintf("must be between %d and %d", f.Min, f.Max),
				}
			}
			validated[f.Name] = n

		default:
			s, ok := raw.(string)
			if !ok {
				return nil, &ArgumentError{Field: f.Name, Reason: "must be a string"}
			}
			if s == "" {
				if f.Required {
					return nil, &ArgumentError{Field: f.Name, Reason: "is required"}
				}
				continue
			}
			if f.Format == FormatEmail && !roster.ValidEmail(s) {
				return nil, &ArgumentError{Field: f.Name, Reason: "must be a valid email address"}
			}
			if f.Pattern != "" && !matchPattern(f.Pattern, s) {
				return nil, &ArgumentError{
					Field:  f.Name,
					Reason: fmt.Sprintf("must match pattern %s", f.Pattern),
				}
			}
			validated[f.Name] = s
		}
	}

	return validated, nil
}

// intValue coerces JSON number representations to an int.
// Fractional values are rejected.
func intValue(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}

// stringArg returns the named validated argument, or "" if absent.
func stringArg(args map[string]any, name string) string {
	s, _ := args[name].(string)
	return s
}

// intArg returns the named validated argument, or 0 if absent.
func intArg(args map[string]any, name string) int {
	n, _ := args[name].(int)
	return n
}
