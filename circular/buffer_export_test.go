package circular

// VerifyInvariants panics with dequeerrors.ErrInvariantViolated,
// regardless of healthChecks.
func (s *Buffer[T]) VerifyInvariants() { s.verifyInvariants() }
