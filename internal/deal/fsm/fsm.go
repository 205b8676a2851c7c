package fsm

// Status constants used by the proposal state machine.
const (
	StatusPending     = "pending"
	StatusReviewing   = "reviewing"
	StatusNegotiating = "negotiating"
	StatusAccepted    = "accepted"
	StatusRejected    = "rejected"
)

var statuses = map[string]struct{}{
	StatusPending:     {},
	StatusReviewing:   {},
	StatusNegotiating: {},
	StatusAccepted:    {},
	StatusRejected:    {},
}

var terminal = map[string]struct{}{
	StatusAccepted: {},
	StatusRejected: {},
}

// Valid reports whether the status is one of the known proposal statuses.
func Valid(status string) bool {
	_, ok := statuses[status]
	return ok
}

// Terminal reports whether the status ends the proposal lifecycle.
func Terminal(status string) bool {
	_, ok := terminal[status]
	return ok
}

// CanTransition returns whether the proposal can move from the current status
// to the target status. The typical path is pending -> reviewing ->
// negotiating -> accepted/rejected, but organizers may accept or reject
// straight from pending and negotiation may start from any open status. The
// one hard rule: accepted and rejected are final.
func CanTransition(from, to string) bool {
	if Terminal(from) {
		return false
	}
	return Valid(to)
}
