package client

import "sync/atomic"

// TokenSource issues monotonic request tokens so a caller can tell a
// fresh response from a stale one: tag each request with Next() before
// sending, and drop any response whose token fails Accept(). Without
// this, a slow response arriving after a newer one would overwrite
// fresher state.
type TokenSource struct {
	issued   atomic.Uint64
	accepted atomic.Uint64
}

// Next issues a new token. Tokens increase strictly.
func (s *TokenSource) Next() uint64 {
	return s.issued.Add(1)
}

// Accept reports whether a response carrying the token is still current.
// A token is accepted when it is newer than every previously accepted
// one; accepting it makes all older in-flight tokens stale.
func (s *TokenSource) Accept(token uint64) bool {
	for {
		current := s.accepted.Load()
		if token <= current {
			return false
		}
		if s.accepted.CompareAndSwap(current, token) {
			return true
		}
	}
}
