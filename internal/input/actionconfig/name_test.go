package actionconfig

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestNewName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"short", "fire", "fire"},
		{"exact fit", strings.Repeat("a", NameSize-1), strings.Repeat("a", NameSize-1)},
		{"truncated", strings.Repeat("b", NameSize+10), strings.Repeat("b", NameSize-1)},
		{"embedded nul", "jump\x00ignored", "jump"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewName(tt.in)
			if got := n.String(); got != tt.want {
				t.Errorf("NewName(%q).String() = %q, want %q", tt.in, got, tt.want)
			}
			if n.Len() != len(tt.want) {
				t.Errorf("Len() = %d, want %d", n.Len(), len(tt.want))
			}
			if n.IsEmpty() != (tt.want == "") {
				t.Errorf("IsEmpty() = %v", n.IsEmpty())
			}
		})
	}
}

func TestNameTruncatesAtRuneBoundary(t *testing.T) {
	// 62 ASCII bytes followed by a 3-byte rune: the rune does not fit in 63.
	in := strings.Repeat("x", NameSize-2) + "€"
	got := NewName(in).String()

	if !utf8.ValidString(got) {
		t.Fatalf("truncated name is not valid UTF-8: %q", got)
	}
	if got != strings.Repeat("x", NameSize-2) {
		t.Errorf("NewName() = %q, want the ASCII prefix only", got)
	}
}

func TestLocalizedNameCapacity(t *testing.T) {
	in := strings.Repeat("é", LocalizedNameSize)
	n := NewLocalizedName(in)

	if n.Len() > LocalizedNameSize-1 {
		t.Errorf("Len() = %d exceeds capacity %d", n.Len(), LocalizedNameSize-1)
	}
	if !utf8.ValidString(n.String()) {
		t.Errorf("truncated localized name is not valid UTF-8")
	}
	if n[LocalizedNameSize-1] != 0 {
		t.Error("buffer is not NUL-terminated")
	}
}

func TestNameIsValueSemantic(t *testing.T) {
	a := NewName("menu")
	b := a
	b[0] = 'x'
	if a.String() != "menu" {
		t.Errorf("copy aliased the original: %q", a.String())
	}
}
