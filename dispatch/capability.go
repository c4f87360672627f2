// Package dispatch detects CPU capabilities once at process start and
// maintains a process-wide table mapping each externally visible
// operation to its strongest available implementation.
//
// The table is initialised exactly once by a load-time side effect and
// read without synchronisation thereafter; a Reset hook lets callers
// constrain dispatch to a subset of capabilities (for benchmarking or
// reproducibility), documented as "last writer wins" with no in-flight
// call safety, matching spec.md §4.B/§9.
package dispatch

import (
	"sync"

	"golang.org/x/sys/cpu"
)

// Capability is a bitmask of CPU feature tiers. Bits encode tiers, not an
// arbitrary set: dispatch scans from strongest to weakest and installs the
// first implementation whose tier bit is set.
type Capability uint32

// Named capability bits, ordered strongest-last within each architecture
// family so callers can express "at least this tier" with a single
// comparison if they choose to, though dispatch itself always scans
// high-to-low through the explicit list in tiersStrongToWeak.
const (
	Serial Capability = 1 << iota
	Haswell           // AVX2
	Skylake           // AVX-512 F/BW/VL/DQ + VAES
	Ice               // adds AVX-512 VBMI/VBMI2
	Neon
	Sve
	Sve2
	Sve2p1
	Cuda // reserved; never set by Detect, see spec.md §1 Non-goals
)

// tiersStrongToWeak lists every non-Cuda, non-Serial bit from strongest to
// weakest for table initialisation scans.
var tiersStrongToWeak = []Capability{Sve2p1, Sve2, Sve, Neon, Ice, Skylake, Haswell}

// String renders a single capability bit as its canonical name. It returns
// "unknown" if more than one bit (or zero bits) is set; use Names for a
// bitmask.
func (c Capability) String() string {
	switch c {
	case Serial:
		return "serial"
	case Haswell:
		return "haswell"
	case Skylake:
		return "skylake"
	case Ice:
		return "ice"
	case Neon:
		return "neon"
	case Sve:
		return "sve"
	case Sve2:
		return "sve2"
	case Sve2p1:
		return "sve2p1"
	case Cuda:
		return "cuda"
	default:
		return "unknown"
	}
}

// Has reports whether every bit in want is set in c.
func (c Capability) Has(want Capability) bool { return c&want == want }

// Names converts a bitmask into an ordered list of capability names,
// strongest-first, per spec.md §6's "helper converts a bitmask to an
// ordered list of strings and back".
func Names(mask Capability) []string {
	names := make([]string, 0, len(tiersStrongToWeak)+1)
	for _, tier := range tiersStrongToWeak {
		if mask&tier != 0 {
			names = append(names, tier.String())
		}
	}
	if mask&Cuda != 0 {
		names = append([]string{Cuda.String()}, names...)
	}
	if mask&Serial != 0 {
		names = append(names, Serial.String())
	}
	return names
}

// ParseNames converts an ordered list of capability names back into a
// bitmask, ignoring unrecognised names.
func ParseNames(names []string) Capability {
	var mask Capability
	for _, n := range names {
		switch n {
		case "serial":
			mask |= Serial
		case "haswell":
			mask |= Haswell
		case "skylake":
			mask |= Skylake
		case "ice":
			mask |= Ice
		case "neon":
			mask |= Neon
		case "sve":
			mask |= Sve
		case "sve2":
			mask |= Sve2
		case "sve2p1":
			mask |= Sve2p1
		case "cuda":
			mask |= Cuda
		}
	}
	return mask
}

var (
	detectOnce   sync.Once
	detectedMask Capability
)

// Detect probes CPU features via golang.org/x/sys/cpu and returns the
// capability bitmask. The probe runs exactly once per process; subsequent
// calls return the cached result, making Detect idempotent and
// side-effect-free after the first call per spec.md §4.A.
func Detect() Capability {
	detectOnce.Do(func() {
		detectedMask = Serial
		if cpu.X86.HasAVX2 {
			detectedMask |= Haswell
		}
		if cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW && cpu.X86.HasAVX512VL && cpu.X86.HasAVX512DQ && cpu.X86.HasAVX512VAES {
			detectedMask |= Skylake
		}
		if detectedMask&Skylake != 0 && cpu.X86.HasAVX512VBMI && cpu.X86.HasAVX512VBMI2 {
			detectedMask |= Ice
		}
		if cpu.ARM64.HasASIMD {
			detectedMask |= Neon
		}
		if cpu.ARM64.HasSVE {
			detectedMask |= Sve
		}
	})
	return detectedMask
}
