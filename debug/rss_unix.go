//go:build unix

package debug

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// residentBytes returns the peak resident set size of the process.
func residentBytes() (uint64, error) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0, err
	}
	maxrss := uint64(ru.Maxrss)
	// Darwin reports bytes, the other kernels kilobytes.
	if runtime.GOOS != "darwin" && runtime.GOOS != "ios" {
		maxrss *= 1024
	}
	return maxrss, nil
}
