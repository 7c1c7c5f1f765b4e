//go:build !linux
// +build !linux

package cmd

import "fmt"

func hardwareCounters(f func()) {
	f()
	fmt.Println("hardware counters require linux perf events")
}
