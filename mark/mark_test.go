package mark

import "testing"

func TestNewDefaultsDelimiter(t *testing.T) {
	m := New("")

	if m.Delimiter() != DefaultDelimiter {
		t.Errorf("expected %q, got %q", DefaultDelimiter, m.Delimiter())
	}

	if m.Width() != 2 {
		t.Errorf("expected width 2, got %d", m.Width())
	}
}

func TestWrap(t *testing.T) {
	m := Default()

	if got := m.Wrap("cat"); got != "==cat==" {
		t.Errorf("expected %q, got %q", "==cat==", got)
	}

	if got := m.Wrap(""); got != "====" {
		t.Errorf("expected %q, got %q", "====", got)
	}
}

func TestIsWrapped(t *testing.T) {
	m := Default()

	cases := []struct {
		text string
		want bool
	}{
		{"==cat==", true},
		{"====", true},
		{"cat", false},
		{"==cat", false},
		{"cat==", false},
		{"==", false},
		{"=c=", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := m.IsWrapped(tc.text); got != tc.want {
			t.Errorf("IsWrapped(%q): got %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestUnwrap(t *testing.T) {
	m := Default()

	got, ok := m.Unwrap("==cat==")
	if !ok || got != "cat" {
		t.Errorf("expected (%q, true), got (%q, %v)", "cat", got, ok)
	}

	got, ok = m.Unwrap("cat")
	if ok || got != "cat" {
		t.Errorf("expected (%q, false), got (%q, %v)", "cat", got, ok)
	}

	// A bare pair unwraps to the empty string.
	got, ok = m.Unwrap("====")
	if !ok || got != "" {
		t.Errorf("expected (%q, true), got (%q, %v)", "", got, ok)
	}
}

func TestUnwrapShortText(t *testing.T) {
	m := Default()

	// Shorter than a full pair must not be treated as wrapped.
	got, ok := m.Unwrap("==")
	if ok {
		t.Errorf("expected no unwrap for %q, got %q", "==", got)
	}
}

func TestCount(t *testing.T) {
	m := Default()
	doc := "cat and cat and ==cat=="

	if got := m.Count(doc, "cat"); got != 3 {
		t.Errorf("expected 3 bare occurrences, got %d", got)
	}

	if got := m.CountWrapped(doc, "cat"); got != 1 {
		t.Errorf("expected 1 wrapped occurrence, got %d", got)
	}

	if got := m.Count(doc, ""); got != 0 {
		t.Errorf("expected 0 for empty text, got %d", got)
	}
}

func TestCustomDelimiter(t *testing.T) {
	m := New("**")

	if got := m.Wrap("bold"); got != "**bold**" {
		t.Errorf("expected %q, got %q", "**bold**", got)
	}

	if !m.IsWrapped("**bold**") {
		t.Error("expected **bold** to be wrapped")
	}

	if m.IsWrapped("==bold==") {
		t.Error("expected ==bold== not to be wrapped with ** delimiter")
	}
}
