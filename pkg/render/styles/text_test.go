package styles

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		maxLen int
		want   string
	}{
		{"empty", "", 10, ""},
		{"short unchanged", "hello", 10, "hello"},
		{"exact length", "hello", 5, "hello"},
		{"trimmed first", "  hello  ", 5, "hello"},
		{"shortened", "hello world", 8, "hello w…"},
		{"right trims before ellipsis", "hello world", 7, "hello…"},
		{"one rune budget", "hello", 1, "…"},
		{"zero budget", "hello", 0, ""},
		{"multibyte", "héllo wörld", 6, "héllo…"},
		{"unicode space before ellipsis", "hello\u00a0world", 7, "hello…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.text, tt.maxLen); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.text, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestTruncateBounds(t *testing.T) {
	inputs := []string{"", "a", "abc def ghi", strings.Repeat("x", 200), "  padded   text  ", "ünïcødé strings"}
	for _, s := range inputs {
		for n := 1; n <= 40; n++ {
			got := Truncate(s, n)
			if l := utf8.RuneCountInString(got); l > n {
				t.Errorf("Truncate(%q, %d) has %d runes", s, n, l)
			}
			trimmed := strings.TrimSpace(s)
			if utf8.RuneCountInString(trimmed) <= n && got != trimmed {
				t.Errorf("Truncate(%q, %d) = %q, want unchanged %q", s, n, got, trimmed)
			}
		}
	}
}

func TestEstimateWidth(t *testing.T) {
	tests := []struct {
		label string
		want  int
	}{
		{"", 0},
		{"Home", 28},
		{"Resources", 63},
		{"Über", 28},
	}
	for _, tt := range tests {
		if got := EstimateWidth(tt.label); got != tt.want {
			t.Errorf("EstimateWidth(%q) = %d, want %d", tt.label, got, tt.want)
		}
	}
	if got := EstimateWidthPx("abc", 7.5); got != 22 {
		t.Errorf("EstimateWidthPx floors: got %d, want 22", got)
	}
}

func TestEscapeXML(t *testing.T) {
	got := EscapeXML(`Tom & "Jerry" <'cat'>`)
	want := "Tom &amp; &quot;Jerry&quot; &lt;&apos;cat&apos;&gt;"
	if got != want {
		t.Errorf("EscapeXML() = %q, want %q", got, want)
	}
	if got := EscapeXML("&amp;"); got != "&amp;amp;" {
		t.Errorf("EscapeXML(&amp;) = %q", got)
	}
}

func TestEscapeXMLInvalidChars(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Bell\u0007", "Bell\uFFFD"},
		{"a\u0001b\u001fc", "a\uFFFDb\uFFFDc"},
		{"tab\tline\nret\r", "tab\tline\nret\r"},
		{"bad \xff byte", "bad \uFFFD byte"},
		{"\uFFFE", "\uFFFD"},
		{"emoji 🚰 ok", "emoji 🚰 ok"},
	}
	for _, tt := range tests {
		if got := EscapeXML(tt.in); got != tt.want {
			t.Errorf("EscapeXML(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCollapseSpace(t *testing.T) {
	if got := CollapseSpace("  one \n two\t\tthree "); got != "one two three" {
		t.Errorf("CollapseSpace() = %q", got)
	}
}

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		s, err := Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", name, err)
		}
		if s.Name() != name {
			t.Errorf("Lookup(%q).Name() = %q", name, s.Name())
		}
		var buf bytes.Buffer
		s.RenderDefs(&buf)
		if !strings.Contains(buf.String(), ".sketch-dash") {
			t.Errorf("style %q does not define .sketch-dash", name)
		}
	}
	if _, err := Lookup("neon"); err == nil {
		t.Error("Lookup(neon) should fail")
	}
}
