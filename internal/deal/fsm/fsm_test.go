package fsm

import "testing"

func TestCanTransition(t *testing.T) {
	if !CanTransition(StatusPending, StatusReviewing) {
		t.Fatal("expected pending -> reviewing to be allowed")
	}
	if !CanTransition(StatusPending, StatusAccepted) {
		t.Fatal("expected pending -> accepted to be allowed")
	}
	if !CanTransition(StatusPending, StatusNegotiating) {
		t.Fatal("expected pending -> negotiating to be allowed")
	}
	if !CanTransition(StatusReviewing, StatusRejected) {
		t.Fatal("expected reviewing -> rejected to be allowed")
	}
	if !CanTransition(StatusNegotiating, StatusAccepted) {
		t.Fatal("expected negotiating -> accepted to be allowed")
	}
	if CanTransition(StatusAccepted, StatusPending) {
		t.Fatal("accepted is terminal, no transition out is allowed")
	}
	if CanTransition(StatusRejected, StatusRejected) {
		t.Fatal("rejected is terminal, even self-transition is rejected")
	}
	if CanTransition(StatusPending, "archived") {
		t.Fatal("unexpected transition to unknown status allowed")
	}
}

func TestTerminal(t *testing.T) {
	if !Terminal(StatusAccepted) || !Terminal(StatusRejected) {
		t.Fatal("accepted and rejected must be terminal")
	}
	for _, s := range []string{StatusPending, StatusReviewing, StatusNegotiating} {
		if Terminal(s) {
			t.Fatalf("%s must not be terminal", s)
		}
	}
}

func TestValid(t *testing.T) {
	for _, s := range []string{StatusPending, StatusReviewing, StatusNegotiating, StatusAccepted, StatusRejected} {
		if !Valid(s) {
			t.Fatalf("%s must be a valid status", s)
		}
	}
	if Valid("archived") || Valid("") {
		t.Fatal("unknown statuses must be invalid")
	}
}
