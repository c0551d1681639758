package timer

import "fmt"

// FormatClock formats a whole number of seconds as MM:SS. Minutes are
// zero-padded to at least two digits and are not wrapped into hours, so
// 3661 renders as "61:01".
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
