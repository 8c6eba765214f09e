package usecase

import "time"

// Clock supplies the current time; tests pin it, production leaves it nil.
type Clock func() time.Time

func nowOr(c Clock) time.Time {
	if c != nil {
		return c()
	}
	return time.Now()
}
