package geometry

import (
	"fmt"
	"strings"
)

// Direction is the ambient text direction.
type Direction int

const (
	LTR Direction = iota
	RTL
)

func (d Direction) String() string {
	if d == RTL {
		return "rtl"
	}
	return "ltr"
}

// ParseDirection accepts "ltr" or "rtl" in any case.
func ParseDirection(value string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "ltr":
		return LTR, nil
	case "rtl":
		return RTL, nil
	default:
		return LTR, fmt.Errorf("unknown text direction %q (want ltr or rtl)", value)
	}
}

// Placement is the preferred side of the toggle button the root panel is
// anchored to.
type Placement string

const (
	PlacementBottom Placement = "bottom"
	PlacementTop    Placement = "top"
	PlacementStart  Placement = "start"
	PlacementEnd    Placement = "end"
)

// DefaultPlacement opens the root panel below the toggle button.
const DefaultPlacement = PlacementBottom

// Placements lists the accepted placement values.
func Placements() []Placement {
	return []Placement{PlacementTop, PlacementBottom, PlacementStart, PlacementEnd}
}

// ParsePlacement validates a placement name. An empty value selects the
// default.
func ParsePlacement(value string) (Placement, error) {
	trimmed := Placement(strings.ToLower(strings.TrimSpace(value)))
	if trimmed == "" {
		return DefaultPlacement, nil
	}
	for _, p := range Placements() {
		if p == trimmed {
			return p, nil
		}
	}
	return DefaultPlacement, fmt.Errorf("unknown placement %q (want top, bottom, start or end)", value)
}
