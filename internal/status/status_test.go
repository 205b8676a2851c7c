package status

import "testing"

func TestVocabularyTable(t *testing.T) {
	cases := []struct {
		status string
		color  string
		label  string
	}{
		{"pending", ColorWarning, "Pending Review"},
		{"reviewing", ColorWarning, "Reviewing"},
		{"negotiating", ColorWarning, "Under Negotiation"},
		{"accepted", ColorSuccess, "Accepted"},
		{"rejected", ColorError, "Rejected"},
		{"completed", ColorSuccess, "Completed"},
		{"paid", ColorSuccess, "Paid"},
		{"unpaid", ColorError, "Unpaid"},
		{"processing", ColorWarning, "Processing"},
		{"active", ColorSuccess, "active"},
		{"inactive", ColorError, "inactive"},
		{"open", ColorError, "open"},
	}
	for _, c := range cases {
		if got := Color(c.status); got != c.color {
			t.Fatalf("Color(%q) = %q, want %q", c.status, got, c.color)
		}
		if got := Label(c.status); got != c.label {
			t.Fatalf("Label(%q) = %q, want %q", c.status, got, c.label)
		}
	}
}

func TestUnknownStatusFallsBack(t *testing.T) {
	if got := Color("foo"); got != ColorPrimary {
		t.Fatalf("expected primary for unknown status, got %q", got)
	}
	if got := Label("foo"); got != "foo" {
		t.Fatalf("expected raw status as label, got %q", got)
	}
}
