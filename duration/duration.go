// Package duration converts the ISO 8601 durations reported by YouTube
// (PT1H2M3S) into hours and minutes.
//
// Parsing is fail-soft: anything that is not a well-formed duration counts
// as zero, so a broken value never keeps a project out of the catalog.
package duration

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// Components are limited to six digits so that the total in minutes fits an
// int on any platform; longer values count as malformed.
var pattern = regexp.MustCompile(`^P(?:(\d{1,6})D)?(?:T(?:(\d{1,6})H)?(?:(\d{1,6})M)?(?:(\d{1,6})S)?)?$`)

type Duration struct {
	Hours   int
	Minutes int
}

func (d Duration) TotalMinutes() int {
	return d.Hours*60 + d.Minutes
}

// Parse returns the duration rounded to whole minutes. Seconds are rounded
// to the nearest minute before hours and minutes are split.
func Parse(iso string) Duration {
	h, m, s, ok := components(iso)
	if !ok {
		return Duration{}
	}
	total := h*60 + m + int(math.Round(float64(s)/60))

	return Duration{Hours: total / 60, Minutes: total % 60}
}

// ToFractionalHours returns the exact duration in hours, without rounding.
func ToFractionalHours(iso string) float64 {
	h, m, s, ok := components(iso)
	if !ok {
		return 0
	}

	return float64(h) + float64(m)/60 + float64(s)/3600
}

// Format renders a length in hours for display. Zero and negative lengths
// are shown as "< 1 hour".
func Format(hours float64) string {
	if hours <= 0 || math.IsNaN(hours) {
		return "< 1 hour"
	}
	total := int(math.Round(hours * 60))

	return fmt.Sprintf("%d hours %d minutes", total/60, total%60)
}

// components extracts hours, minutes and seconds. Days are folded into
// hours.
func components(iso string) (int, int, int, bool) {
	matches := pattern.FindStringSubmatch(iso)
	if matches == nil {
		return 0, 0, 0, false
	}

	var values [4]int
	for i, match := range matches[1:] {
		if match == "" {
			continue
		}
		n, err := strconv.Atoi(match)
		if err != nil {
			return 0, 0, 0, false
		}
		values[i] = n
	}

	return values[0]*24 + values[1], values[2], values[3], true
}
