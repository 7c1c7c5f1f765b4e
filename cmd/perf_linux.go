//go:build linux
// +build linux

package cmd

import (
	"fmt"

	perf "github.com/hodgesds/perf-utils"
)

// hardwareCounters profiles a separate run of f under each counter, so the
// counts are comparable only when f is deterministic.
func hardwareCounters(f func()) {
	var (
		wrap = func() error {
			f()
			return nil
		}
		report = func(name string, pv *perf.ProfileValue, err error) {
			if err != nil {
				fmt.Printf("%16s: unavailable (%v)\n", name, err)
				return
			}
			fmt.Printf("%16s: %d\n", name, pv.Value)
		}
	)
	pv, err := perf.CPUInstructions(wrap)
	report("instructions", pv, err)
	pv, err = perf.CPUCycles(wrap)
	report("cycles", pv, err)
	pv, err = perf.CacheRefs(wrap)
	report("cache refs", pv, err)
	pv, err = perf.CacheMisses(wrap)
	report("cache misses", pv, err)
}
