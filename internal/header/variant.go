package header

import (
	"fmt"
	"strings"
)

// Variant selects which game runs inside the header.
type Variant int

const (
	VariantTank  Variant = iota // Lane shooter
	VariantBlock                // Ball-and-paddle breaker
)

// Variants returns every variant in menu order.
func Variants() []Variant {
	return []Variant{VariantTank, VariantBlock}
}

// String returns the variant's identifier as used on the command line.
func (v Variant) String() string {
	switch v {
	case VariantTank:
		return "tank"
	case VariantBlock:
		return "block"
	default:
		return fmt.Sprintf("variant(%d)", int(v))
	}
}

// Title returns the display name.
func (v Variant) Title() string {
	switch v {
	case VariantTank:
		return "Battle City"
	case VariantBlock:
		return "Hit Block"
	default:
		return v.String()
	}
}

// Description returns a one-line summary for menus and listings.
func (v Variant) Description() string {
	switch v {
	case VariantTank:
		return "Hold three lanes against incoming tanks"
	case VariantBlock:
		return "Bounce the ball through a wall of blocks"
	default:
		return ""
	}
}

// ParseVariant resolves an identifier such as "tank" or "block".
func ParseVariant(s string) (Variant, error) {
	id := strings.ToLower(strings.TrimSpace(s))
	for _, v := range Variants() {
		if v.String() == id {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unknown variant %q (expected tank or block)", s)
}
