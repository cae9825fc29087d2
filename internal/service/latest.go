package service

import "sync/atomic"

// Latest guards against stale aggregation results overwriting newer ones when
// range computations overlap. Begin issues a token before starting a
// computation; Current reports whether that token is still the newest, so a
// superseded computation can drop its result instead of publishing it.
type Latest struct {
	token atomic.Int64
}

// Begin marks the start of a new computation and returns its token. Any
// previously issued token is superseded.
func (l *Latest) Begin() int64 {
	return l.token.Add(1)
}

// Current reports whether token is still the most recently issued one.
func (l *Latest) Current(token int64) bool {
	return l.token.Load() == token
}
