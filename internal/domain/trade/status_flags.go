package trade

import (
	"github.com/smedge/backend/internal/domain/shared"
)

// StatusFlag identifies one of the fixed production status flags on an order
type StatusFlag string

const (
	FlagAwaitingDesign   StatusFlag = "awaiting_design"
	FlagAwaitingMaterial StatusFlag = "awaiting_material"
	FlagAwaitingPrint    StatusFlag = "awaiting_print"
	FlagPrinting         StatusFlag = "printing"
	FlagPrinted          StatusFlag = "printed"
	FlagDelivered        StatusFlag = "delivered"
)

// AllStatusFlags lists the flags in display order
var AllStatusFlags = []StatusFlag{
	FlagAwaitingDesign,
	FlagAwaitingMaterial,
	FlagAwaitingPrint,
	FlagPrinting,
	FlagPrinted,
	FlagDelivered,
}

// String returns the string representation of StatusFlag
func (f StatusFlag) String() string {
	return string(f)
}

// IsValid returns true if the flag is one of the enumerated keys
func (f StatusFlag) IsValid() bool {
	switch f {
	case FlagAwaitingDesign, FlagAwaitingMaterial, FlagAwaitingPrint, FlagPrinting, FlagPrinted, FlagDelivered:
		return true
	}
	return false
}

// StatusFlags holds the per-order flag states. Flags are independent
// booleans with no enforced sequencing; any flag may be set or unset in any
// order.
type StatusFlags map[StatusFlag]bool

// NewStatusFlags returns a flag set with every flag cleared
func NewStatusFlags() StatusFlags {
	flags := make(StatusFlags, len(AllStatusFlags))
	for _, f := range AllStatusFlags {
		flags[f] = false
	}
	return flags
}

// Set updates a flag, rejecting unknown keys
func (s StatusFlags) Set(flag StatusFlag, value bool) error {
	if !flag.IsValid() {
		return shared.ErrInvalidStatusFlag
	}
	s[flag] = value
	return nil
}

// Has reports whether a flag is set. Unknown flags are simply unset.
func (s StatusFlags) Has(flag StatusFlag) bool {
	return s[flag]
}

// Active returns the set flags in display order
func (s StatusFlags) Active() []StatusFlag {
	active := make([]StatusFlag, 0, len(AllStatusFlags))
	for _, f := range AllStatusFlags {
		if s[f] {
			active = append(active, f)
		}
	}
	return active
}
