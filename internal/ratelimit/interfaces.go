package ratelimit

//go:generate mockgen -source=interfaces.go -destination=../mock/limiter_mock.go -package=mock

// Limiter decides whether a request identified by key may proceed.
type Limiter interface {
	// Admit consumes one token from the bucket owned by key, creating a full
	// bucket on first sight. A denied decision has no side effects.
	// An empty key yields ErrEmptyKey.
	Admit(key string) (Decision, error)
}
