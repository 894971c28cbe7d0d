package utils

import (
	"fmt"
	"math"
)

const humanSizeStep = 1024

var humanSizeUnits = []string{"", "K", "M", "G", "T", "P", "E"}

// FormatHumanSize converts a byte length into the compact form used by long
// directory listings: plain bytes below 1K, one rounded-up decimal below ten
// units, and rounded-up whole units otherwise (512, 4.0K, 12M).
func FormatHumanSize(bytes int64) string {
	if bytes < 0 {
		return "0"
	}
	if bytes < humanSizeStep {
		return fmt.Sprintf("%d", bytes)
	}
	value := float64(bytes)
	unitIndex := 0
	for value >= humanSizeStep && unitIndex < len(humanSizeUnits)-1 {
		value /= humanSizeStep
		unitIndex++
	}
	if value < 10 {
		rounded := math.Ceil(value*10) / 10
		if rounded < 10 {
			return fmt.Sprintf("%.1f%s", rounded, humanSizeUnits[unitIndex])
		}
		return fmt.Sprintf("%.0f%s", rounded, humanSizeUnits[unitIndex])
	}
	rounded := math.Ceil(value)
	if rounded >= humanSizeStep && unitIndex < len(humanSizeUnits)-1 {
		return fmt.Sprintf("%.1f%s", 1.0, humanSizeUnits[unitIndex+1])
	}
	return fmt.Sprintf("%.0f%s", rounded, humanSizeUnits[unitIndex])
}
