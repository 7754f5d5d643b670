package markdown

import "fmt"

const (
	_         = iota
	KB uint64 = 1 << (10 * iota)
	MB
	GB
)

// MaxFileSize is the largest file Read accepts (10 MiB).
const MaxFileSize = int64(10 * MB)

// FormatSize formats bytes into a human-readable string.
// Exact multiples drop the fraction: 10485760 -> "10MB", 1572864 -> "1.5MB".
func FormatSize(bytes int64) string {
	if bytes < 0 {
		return fmt.Sprintf("%dB", bytes)
	}
	b := uint64(bytes)
	switch {
	case b >= GB:
		return formatUnit(b, GB, "GB")
	case b >= MB:
		return formatUnit(b, MB, "MB")
	case b >= KB:
		return formatUnit(b, KB, "KB")
	default:
		return fmt.Sprintf("%dB", b)
	}
}

func formatUnit(b, unit uint64, suffix string) string {
	if b%unit == 0 {
		return fmt.Sprintf("%d%s", b/unit, suffix)
	}
	return fmt.Sprintf("%.1f%s", float64(b)/float64(unit), suffix)
}
