package players

import "time"

//go:generate mockgen -destination=mocks/mock_time_provider.go -package=mocks github.com/KirkDiggler/delve-vitals/internal/repositories/players TimeProvider

type TimeProvider interface {
	Now() time.Time
}

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time {
	return time.Now().UTC()
}

// RealTimeProvider returns wall clock time in UTC
func RealTimeProvider() TimeProvider {
	return realTimeProvider{}
}
