package activity

import (
	"fmt"
	"strings"
)

// Type is the closed set of supported activities.
type Type string

const (
	Cycling Type = "cycling"
	Hiking  Type = "hiking"
	Walking Type = "walking"
)

// Types returns every supported activity, in display order.
func Types() []Type {
	return []Type{Cycling, Hiking, Walking}
}

// ParseType normalizes raw input (trim, lower-case) and checks it against the
// supported set.
func ParseType(raw string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(raw)))
	switch t {
	case Cycling, Hiking, Walking:
		return t, nil
	}
	return "", fmt.Errorf("%q: %w", raw, ErrInvalidActivity)
}

// MetricUnit is the unit of the average metric for this activity: cycling
// records average speed in km/h, everything else average pace in min/km.
// The unit is a function of the type and is never stored independently.
func (t Type) MetricUnit() string {
	if t == Cycling {
		return "km/h"
	}
	return "min/km"
}

func (t Type) String() string {
	return string(t)
}
