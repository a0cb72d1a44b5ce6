package pipeline

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// Volume is the default row count of a table.
type Volume struct {
	Table string
	Rows  int

	// Fixed tables are reference data whose size ignores the scale factor.
	Fixed bool

	// Derived tables take their size from reference lists or parent rows
	// (one snapshot per employee month, for example) and cannot be
	// overridden.
	Derived bool
}

// ResolveCounts applies the scale factor and per-table overrides to the
// default volumes. Override keys are matched case-insensitively.
func ResolveCounts(volumes []Volume, scale float64, overrides map[string]int) (map[string]int, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("scale must be positive, got %g", scale)
	}

	counts := make(map[string]int, len(volumes))
	byKey := make(map[string]Volume, len(volumes))
	for _, v := range volumes {
		byKey[strings.ToLower(v.Table)] = v
		n := v.Rows
		if !v.Fixed && !v.Derived {
			n = max(1, int(math.Round(float64(v.Rows)*scale)))
		}
		counts[v.Table] = n
	}

	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		v, ok := byKey[strings.ToLower(k)]
		if !ok {
			return nil, fmt.Errorf("unknown table %q in count overrides", k)
		}
		if v.Derived {
			return nil, fmt.Errorf("row count of %s is derived and cannot be overridden", v.Table)
		}
		n := overrides[k]
		if n < 0 {
			return nil, fmt.Errorf("row count of %s must not be negative, got %d", v.Table, n)
		}
		counts[v.Table] = n
	}
	return counts, nil
}
