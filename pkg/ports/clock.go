package ports

import "time"

// Clock abstracts the timer provider used by the wait primitive, so tests
// can substitute a fake that does not actually sleep.
type Clock interface {
	Sleep(d time.Duration)
}
