package models

import "time"

// Stamp returns the current moment as the dd/mm/yyyy date and 12-hour clock
// strings stored on every document.
func Stamp() (date string, clock string) {
	now := time.Now()
	return now.Format("02/01/2006"), now.Format("03:04 PM")
}
