package usecase

import "sync"

// submitGuard enforces the modal-form contract: while a submission for a
// given form is in flight, a second identical submission is rejected
// instead of queued. Distinct forms never block each other.
type submitGuard struct {
	mu       sync.Mutex
	inFlight map[string]bool
}

func newSubmitGuard() *submitGuard {
	return &submitGuard{inFlight: make(map[string]bool)}
}

// begin reports whether the caller acquired the form. The caller must call
// end once the submission settles, success or failure.
func (g *submitGuard) begin(form string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.inFlight[form] {
		return false
	}
	g.inFlight[form] = true
	return true
}

func (g *submitGuard) end(form string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.inFlight, form)
}
