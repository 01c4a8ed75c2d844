package sane

// Capabilities is a bitset of the seven option-capability flags carried
// in an OptionDescriptor.
type Capabilities Word

const (
	CapSoftSelect Capabilities = 1 << iota
	CapHardSelect
	CapSoftDetect
	CapEmulated
	CapAutomatic
	CapInactive
	CapAdvanced
)

func (c Capabilities) has(flag Capabilities) bool { return c&flag != 0 }

// SoftSelect reports whether the option can be set via software.
func (c Capabilities) SoftSelect() bool { return c.has(CapSoftSelect) }

// HardSelect reports whether the option has a hardware selector.
func (c Capabilities) HardSelect() bool { return c.has(CapHardSelect) }

// SoftDetect reports whether the option's current value can be read
// via software.
func (c Capabilities) SoftDetect() bool { return c.has(CapSoftDetect) }

// Emulated reports whether the backend emulates this option in
// software rather than the hardware supporting it natively.
func (c Capabilities) Emulated() bool { return c.has(CapEmulated) }

// Automatic reports whether the option supports automatic mode
// (ActionSetAuto).
func (c Capabilities) Automatic() bool { return c.has(CapAutomatic) }

// Inactive reports whether the option is currently inactive.
func (c Capabilities) Inactive() bool { return c.has(CapInactive) }

// Advanced reports whether the option should be hidden from novice
// user interfaces by default.
func (c Capabilities) Advanced() bool { return c.has(CapAdvanced) }

// WithSoftSelect returns c with SoftSelect set or cleared. Setting
// SoftSelect also sets SoftDetect, enforcing the protocol invariant
// that any softwareselectable option must also be softwarereadable.
// Clearing SoftSelect never clears SoftDetect.
func (c Capabilities) WithSoftSelect(on bool) Capabilities {
	if on {
		return c | CapSoftSelect | CapSoftDetect
	}
	return c &^ CapSoftSelect
}

// WithSoftDetect returns c with SoftDetect set or cleared. Clearing
// SoftDetect is a no-op when SoftSelect is set, since SoftSelect
// implies SoftDetect.
func (c Capabilities) WithSoftDetect(on bool) Capabilities {
	if !on && c.SoftSelect() {
		return c
	}
	if on {
		return c | CapSoftDetect
	}
	return c &^ CapSoftDetect
}

func (c Capabilities) WithHardSelect(on bool) Capabilities { return c.withFlag(CapHardSelect, on) }
func (c Capabilities) WithEmulated(on bool) Capabilities   { return c.withFlag(CapEmulated, on) }
func (c Capabilities) WithAutomatic(on bool) Capabilities  { return c.withFlag(CapAutomatic, on) }
func (c Capabilities) WithInactive(on bool) Capabilities   { return c.withFlag(CapInactive, on) }
func (c Capabilities) WithAdvanced(on bool) Capabilities   { return c.withFlag(CapAdvanced, on) }

func (c Capabilities) withFlag(flag Capabilities, on bool) Capabilities {
	if on {
		return c | flag
	}
	return c &^ flag
}
