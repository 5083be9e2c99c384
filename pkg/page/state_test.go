package page

import (
	"testing"

	"github.com/goliatone/go-landing/pkg/ui"
)

func TestState_Variant(t *testing.T) {
	st := State{
		Experiments: []Assignment{
			{Test: "t1", Variant: "A"},
			{Test: "t2", Variant: "B"},
		},
	}

	variant, ok := st.Variant("t2")
	if !ok || variant != "B" {
		t.Fatalf("Variant(t2) = %q, %v; want B, true", variant, ok)
	}

	if _, ok := st.Variant("unknown"); ok {
		t.Fatalf("Variant(unknown) expected false")
	}
}

func TestParseEmailStatus(t *testing.T) {
	cases := []struct {
		label string
		want  EmailStatus
		ok    bool
	}{
		{"idle", EmailIdle, true},
		{"", EmailIdle, true},
		{"sending", EmailSending, true},
		{"accepted", EmailAccepted, true},
		{"rejected", EmailRejected, true},
		{"bogus", EmailIdle, false},
	}

	for _, tc := range cases {
		got, ok := ParseEmailStatus(tc.label)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ParseEmailStatus(%q) = %v, %v; want %v, %v", tc.label, got, ok, tc.want, tc.ok)
		}
	}
}

func TestEmailStatus_StringRoundTrip(t *testing.T) {
	for _, status := range []EmailStatus{EmailIdle, EmailSending, EmailAccepted, EmailRejected} {
		parsed, ok := ParseEmailStatus(status.String())
		if !ok || parsed != status {
			t.Fatalf("round trip for %v failed: got %v, %v", status, parsed, ok)
		}
	}
}

func TestApply_DropsEmptyResults(t *testing.T) {
	views := []View{
		Static(ui.Text("a")),
		Empty(),
		nil,
		Static(ui.Text("b")),
	}

	elements := Apply(views, State{})
	if len(elements) != 2 {
		t.Fatalf("Apply() expected 2 elements, got %d", len(elements))
	}
	if elements[0].Text != "a" || elements[1].Text != "b" {
		t.Fatalf("Apply() wrong order: %v", elements)
	}
}

func TestStatic_IgnoresState(t *testing.T) {
	view := Static(ui.El("hr"))

	first := view(State{EmailDraft: "x"})
	second := view(State{EmailStatus: EmailRejected})

	if first.Tag != "hr" || second.Tag != "hr" {
		t.Fatalf("Static() expected hr for any state")
	}
}
