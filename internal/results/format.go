package results

import "fmt"

// SizeLabel formats a message size in bytes as a short human-readable
// label for category axes: 1048576 -> "1MB", 1024 -> "1KB", 512 -> "512B".
// Division is integral, matching the granularity the measurement stage
// sweeps (powers of two).
func SizeLabel(size int) string {
	switch {
	case size >= 1<<20:
		return fmt.Sprintf("%dMB", size/(1<<20))
	case size >= 1<<10:
		return fmt.Sprintf("%dKB", size/(1<<10))
	default:
		return fmt.Sprintf("%dB", size)
	}
}
