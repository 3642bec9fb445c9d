package effectchain

import "fmt"

// Slot identifies one of the five effect positions.
type Slot int

const (
	SlotCompressor Slot = iota
	SlotFilter
	SlotDistortion
	SlotDelay
	SlotReverb
)

var slotNames = [...]string{
	SlotCompressor: "compressor",
	SlotFilter:     "filter",
	SlotDistortion: "distortion",
	SlotDelay:      "delay",
	SlotReverb:     "reverb",
}

func (s Slot) String() string {
	if s < SlotCompressor || s > SlotReverb {
		return fmt.Sprintf("Slot(%d)", int(s))
	}

	return slotNames[s]
}

// CanonicalOrder returns the fixed processing order of the slots.
func CanonicalOrder() []Slot {
	return []Slot{SlotCompressor, SlotFilter, SlotDistortion, SlotDelay, SlotReverb}
}
