// Package utils contains general helper functions used across the outline tool.
package utils

import "fmt"

// byteSizeUnits lists the supported units in ascending order. Formatting caps at
// the final unit instead of growing past it.
var byteSizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

const byteSizeStep = 1024.0

// FormatByteSize renders a byte count with one decimal place and a unit chosen
// by repeated division by 1024, capping at TB.
func FormatByteSize(sizeBytes int64) string {
	value := float64(sizeBytes)
	for _, unitName := range byteSizeUnits {
		if value < byteSizeStep || unitName == byteSizeUnits[len(byteSizeUnits)-1] {
			return fmt.Sprintf("%.1f %s", value, unitName)
		}
		value /= byteSizeStep
	}
	// Unreachable: the loop always returns on the final unit.
	return fmt.Sprintf("%.1f %s", value, byteSizeUnits[len(byteSizeUnits)-1])
}
