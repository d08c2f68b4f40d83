package projsize

import "fmt"

// sizeUnits are the binary units used by FormatBytes, each a factor of 1024
// above the previous.
//
//nolint:gochecknoglobals // Config constant
var sizeUnits = [...]string{"KB", "MB", "GB", "TB", "PB"}

// FormatBytes renders a byte count using binary units (1 KB = 1024 bytes)
// rounded to two decimals, e.g. 1536 -> "1.50 KB". Counts below 1 KB are
// printed as plain bytes.
func FormatBytes(size int64) string {
	const step = 1024

	if size < step {
		return fmt.Sprintf("%d B", size)
	}

	value := float64(size)

	for _, unit := range sizeUnits {
		value /= step
		if value < step {
			return fmt.Sprintf("%.2f %s", value, unit)
		}
	}

	return fmt.Sprintf("%.2f PB", value)
}
