// Package memory provides in-memory repository implementations used
// when the service runs without a database (mock mode). Every store is
// safe for concurrent use and hands out copies, never internal slices.
package memory

import "time"

func sameDay(t, day time.Time) bool {
	y1, m1, d1 := t.Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
