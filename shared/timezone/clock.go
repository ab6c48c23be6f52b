package timezone

import "time"

// Clock abstracts the current time so time-dependent business rules can be
// tested against fixed instants.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return Now()
}

// SystemClock returns a Clock backed by the application timezone.
func SystemClock() Clock {
	return systemClock{}
}
