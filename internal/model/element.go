package model

import "fmt"

// Element is the thematic category shared by profiles and chores. It drives
// both data partitioning (list filters) and cosmetic presentation.
type Element string

const (
	ElementAir   Element = "air"
	ElementWater Element = "water"
	ElementEarth Element = "earth"
	ElementFire  Element = "fire"
)

// Elements lists the four valid values in display order.
func Elements() []Element {
	return []Element{ElementAir, ElementWater, ElementEarth, ElementFire}
}

// Valid reports whether e is one of the four known elements.
func (e Element) Valid() bool {
	switch e {
	case ElementAir, ElementWater, ElementEarth, ElementFire:
		return true
	}
	return false
}

// ParseElement converts a string to an Element, rejecting unknown values.
func ParseElement(s string) (Element, error) {
	e := Element(s)
	if !e.Valid() {
		return "", fmt.Errorf("unknown element %q", s)
	}
	return e, nil
}
