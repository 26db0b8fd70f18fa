// SPDX-License-Identifier: MIT

package param

// Test bridge: exposes private option state and panic messages to param_test.

// Panic message exports to avoid magic strings in tests.
const PanicStrengthInvalid_TestOnly = panicStrengthInvalid

// OptionsSnapshot is a read-only view of resolved Options.
type OptionsSnapshot struct {
	Strength    float64
	RegionCheck bool
}

// GatherOptionsSnapshot_TestOnly resolves opts over the defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Strength: o.strength, RegionCheck: o.regionCheck}
}
