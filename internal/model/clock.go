package model

import "time"

// WIB is Western Indonesia Time. The store works in this zone regardless of server locale.
var WIB = time.FixedZone("WIB", 7*60*60)

// StartOfDay returns midnight WIB of the day containing t.
func StartOfDay(t time.Time) time.Time {
	local := t.In(WIB)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, WIB)
}
