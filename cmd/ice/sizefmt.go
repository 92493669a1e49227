package main

import "fmt"

// formatSize renders n in binary/IEC units (KiB, MiB, ...) the way
// naturalsize does, or as a bare decimal integer when human is false.
func formatSize(n int64, human bool) string {
	if !human {
		return fmt.Sprintf("%d", n)
	}

	value := float64(n)
	for _, unit := range []string{"", "Ki", "Mi", "Gi", "Ti", "Pi", "Ei", "Zi"} {
		if value < 1024.0 && value > -1024.0 {
			return fmt.Sprintf("%.1f %sB", value, unit)
		}
		value /= 1024.0
	}
	return fmt.Sprintf("%.1f YiB", value)
}
