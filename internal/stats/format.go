package stats

import (
	"math"
	"strconv"
)

const progressDateLayout = "Jan 2"

// FormatTotalWeight renders a lifted total: plain below 1000, otherwise in thousands
// with one decimal and a "k" suffix (4830 -> "4.8k", 1000 -> "1k").
func FormatTotalWeight(total int) string {
	if total < 1000 {
		return strconv.Itoa(total)
	}
	thousands := math.Round(float64(total)/100) / 10
	return strconv.FormatFloat(thousands, 'f', -1, 64) + "k"
}

func roundToTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
