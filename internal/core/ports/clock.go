package ports

import "time"

// Clock supplies the current time.
//
//go:generate mockgen -source=clock.go -destination=mocks/mock_clock.go -package=mocks
type Clock interface {
	Now() time.Time
}
