package actionconfig

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

const (
	// NameSize is the capacity of a Name buffer including the terminating NUL.
	NameSize = 64
	// LocalizedNameSize is the capacity of a LocalizedName buffer including
	// the terminating NUL.
	LocalizedNameSize = 128
)

// Name is a NUL-terminated identifier of at most NameSize-1 bytes.
type Name [NameSize]byte

// LocalizedName is a NUL-terminated display name of at most
// LocalizedNameSize-1 bytes.
type LocalizedName [LocalizedNameSize]byte

// NewName builds a Name from s, truncating at a rune boundary when s does not
// fit. Input after an embedded NUL is dropped.
func NewName(s string) Name {
	var n Name
	copy(n[:], fit(s, NameSize-1))
	return n
}

// NewLocalizedName builds a LocalizedName from s with the same truncation
// rules as NewName.
func NewLocalizedName(s string) LocalizedName {
	var n LocalizedName
	copy(n[:], fit(s, LocalizedNameSize-1))
	return n
}

// String returns the stored text.
func (n Name) String() string { return terminated(n[:]) }

// Len returns the stored length in bytes.
func (n Name) Len() int { return len(terminated(n[:])) }

// IsEmpty reports whether no text is stored.
func (n Name) IsEmpty() bool { return n[0] == 0 }

// String returns the stored text.
func (n LocalizedName) String() string { return terminated(n[:]) }

// Len returns the stored length in bytes.
func (n LocalizedName) Len() int { return len(terminated(n[:])) }

// IsEmpty reports whether no text is stored.
func (n LocalizedName) IsEmpty() bool { return n[0] == 0 }

func terminated(buf []byte) string {
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		return string(buf[:i])
	}
	return string(buf)
}

// fit cuts s at the first NUL and then to at most limit bytes without
// splitting a UTF-8 sequence.
func fit(s string, limit int) string {
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
