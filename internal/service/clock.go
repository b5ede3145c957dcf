package service

import "time"

// Clock returns the current time. Services take one so tests can pin "today".
type Clock func() time.Time

func (c Clock) today() time.Time {
	if c == nil {
		return time.Now().UTC()
	}
	return c().UTC()
}
