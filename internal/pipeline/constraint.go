package pipeline

import (
	"fmt"
	"strings"

	"github.com/forgo/arena/bot/internal/platform"
)

// FieldAlways keys constraints that are evaluated unconditionally, regardless
// of whether any particular field or option is present. Always-constraints
// receive the whole interaction as their value.
const FieldAlways = "__always"

// Constraint is a named predicate over a single extracted value. Check
// returns whether the value passes, plus a human-readable hint used in the
// validation failure message when it does not.
type Constraint struct {
	ID    string
	Check func(value interface{}) (ok bool, hint string)
}

// ConstraintMap attaches ordered constraint lists to extraction points:
// metadata field names or option names, plus the FieldAlways marker.
// Constraint maps are built once per command definition and shared read-only
// across requests.
type ConstraintMap map[string][]Constraint

// ValidationError identifies the first failing constraint of a request.
// It is immutable once constructed.
type ValidationError struct {
	ConstraintID string
	Field        string
	Value        interface{}
	Hint         string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("constraint %s failed on %s (value %v): %s", e.ConstraintID, e.Field, e.Value, e.Hint)
}

// CheckConstraints evaluates the metadata and option constraint maps against
// an interaction. Within one extraction point, constraints run in list order
// and stop at the first failure; across extraction points no order is
// guaranteed. Option constraints are skipped when the option is absent;
// FieldAlways groups always run. The first failure anywhere is returned, nil
// when everything passes.
func CheckConstraints(inter *platform.Interaction, meta, opts ConstraintMap) *ValidationError {
	for field, cs := range meta {
		value, present := extractMeta(inter, field)
		if !present {
			continue
		}
		if verr := checkPoint(field, value, cs); verr != nil {
			return verr
		}
	}
	for name, cs := range opts {
		value, present := extractOption(inter, name)
		if !present {
			continue
		}
		if verr := checkPoint(name, value, cs); verr != nil {
			return verr
		}
	}
	return nil
}

func checkPoint(field string, value interface{}, cs []Constraint) *ValidationError {
	for _, c := range cs {
		ok, hint := c.Check(value)
		if !ok {
			return &ValidationError{
				ConstraintID: c.ID,
				Field:        field,
				Value:        value,
				Hint:         hint,
			}
		}
	}
	return nil
}

func extractMeta(inter *platform.Interaction, field string) (interface{}, bool) {
	if field == FieldAlways {
		return inter, true
	}
	return inter.MetaValue(field)
}

func extractOption(inter *platform.Interaction, name string) (interface{}, bool) {
	if name == FieldAlways {
		return inter, true
	}
	opt, ok := inter.Option(name)
	if !ok {
		return nil, false
	}
	return opt.Value, true
}

// Reusable constraints.

// NonEmpty requires a non-blank string value.
func NonEmpty() Constraint {
	return Constraint{
		ID: "non_empty",
		Check: func(value interface{}) (bool, string) {
			s, ok := value.(string)
			if !ok || strings.TrimSpace(s) == "" {
				return false, "a value is required"
			}
			return true, ""
		},
	}
}

// LengthBetween requires a string of min to max characters inclusive.
func LengthBetween(min, max int) Constraint {
	return Constraint{
		ID: "length",
		Check: func(value interface{}) (bool, string) {
			s, ok := value.(string)
			if !ok || len(s) < min || len(s) > max {
				return false, fmt.Sprintf("must be between %d and %d characters", min, max)
			}
			return true, ""
		},
	}
}

// SnowflakeID requires a well-formed platform snowflake ID.
func SnowflakeID() Constraint {
	return Constraint{
		ID: "snowflake",
		Check: func(value interface{}) (bool, string) {
			s, ok := value.(string)
			if !ok || !platform.IsSnowflake(s) {
				return false, "must be a platform ID"
			}
			return true, ""
		},
	}
}

// IntBetween requires an integer value of min to max inclusive.
func IntBetween(min, max int) Constraint {
	return Constraint{
		ID: "int_range",
		Check: func(value interface{}) (bool, string) {
			n, ok := platform.Option{Value: value}.Int()
			if !ok || n < min || n > max {
				return false, fmt.Sprintf("must be a number between %d and %d", min, max)
			}
			return true, ""
		},
	}
}

// RequiredOption is an always-constraint requiring a named option to be
// supplied with the invocation.
func RequiredOption(name string) Constraint {
	return Constraint{
		ID: "required",
		Check: func(value interface{}) (bool, string) {
			inter, ok := value.(*platform.Interaction)
			if !ok {
				return false, "malformed request"
			}
			if _, ok := inter.Option(name); !ok {
				return false, fmt.Sprintf("%s is required", name)
			}
			return true, ""
		},
	}
}
