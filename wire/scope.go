package wire

import "neopack.dev/neopack"

// scopeKind is the kind of an open encoder container.
type scopeKind uint8

const (
	scopeList scopeKind = iota + 1
	scopeMap
	scopeArray
)

// mapState tracks whether a Map scope is waiting for a key or for the value
// that completes the pair started by the last Key call. Every transition
// that does not match the expected state is a fail-fast invariant
// violation.
type mapState uint8

const (
	awaitingKey mapState = iota
	awaitingValue
)

// scope is one entry in the encoder's stack of open containers. Closing a
// scope back-patches the element count that was written as a placeholder
// when the scope opened; an array's stride is written in full at open.
type scope struct {
	kind scopeKind

	// countOffset is the absolute byte offset of the placeholder u16 count
	// field within e.buf, patched when the scope closes. count is kept as an
	// int, not a uint16, so that an overflow past 65535 can be detected
	// before it silently wraps.
	countOffset int
	count       int

	// mapAwait is only meaningful for scopeMap.
	mapAwait mapState

	// itemTag, stride and byteTally are only meaningful for scopeArray.
	itemTag   neopack.Tag
	stride    uint16
	byteTally int
}

// scopeStack is the encoder's stack of open containers. Only the topmost
// scope may be mutated; scopes must close in the reverse order in which
// they were opened.
type scopeStack struct {
	scopes []scope
}

func (s *scopeStack) push(sc scope) {
	s.scopes = append(s.scopes, sc)
}

// top returns a pointer to the innermost open scope, or nil if the stack is
// empty (i.e. the encoder is at the root level).
func (s *scopeStack) top() *scope {
	if len(s.scopes) == 0 {
		return nil
	}
	return &s.scopes[len(s.scopes)-1]
}

// pop removes and returns the innermost open scope. It panics if the stack
// is empty; callers must check top() first.
func (s *scopeStack) pop() scope {
	n := len(s.scopes)
	sc := s.scopes[n-1]
	s.scopes = s.scopes[:n-1]
	return sc
}

func (s *scopeStack) depth() int { return len(s.scopes) }

func (s *scopeStack) reset() { s.scopes = s.scopes[:0] }
