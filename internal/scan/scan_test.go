package scan

import (
	"bytes"
	"strings"
	"testing"
)

func TestIndexByteFrom(t *testing.T) {
	tests := []struct {
		name string
		buf  string
		from int
		c    byte
		want int
	}{
		{name: "empty buffer", buf: "", from: 0, c: 'x', want: -1},
		{name: "first byte", buf: "abc", from: 0, c: 'a', want: 0},
		{name: "middle byte", buf: "abc", from: 0, c: 'b', want: 1},
		{name: "from skips earlier match", buf: "abab", from: 2, c: 'a', want: 2},
		{name: "from past last match", buf: "abab", from: 3, c: 'a', want: -1},
		{name: "from at end of buffer", buf: "abc", from: 3, c: 'a', want: -1},
		{name: "absent byte", buf: "abc", from: 0, c: 'z', want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IndexByteFrom([]byte(tt.buf), tt.from, tt.c)
			if got != tt.want {
				t.Errorf("IndexByteFrom(%q, %d, %q) = %d, want %d", tt.buf, tt.from, tt.c, got, tt.want)
			}
		})
	}
}

func TestIndexAny3From(t *testing.T) {
	tests := []struct {
		name string
		buf  string
		from int
		want int
	}{
		{name: "empty buffer", buf: "", from: 0, want: -1},
		{name: "no match", buf: "abcdefgh", from: 0, want: -1},
		{name: "separator first", buf: "ab,cd\nef", from: 0, want: 2},
		{name: "newline first", buf: "ab\ncd,ef", from: 0, want: 2},
		{name: "carriage return", buf: "abcd\r\nef", from: 0, want: 4},
		{name: "from skips earlier match", buf: "a,b,c", from: 2, want: 3},
		{name: "match beyond first word", buf: "aaaaaaaaaa,b", from: 0, want: 10},
		{name: "match in tail after word loop", buf: "aaaaaaaab,", from: 0, want: 9},
		{name: "match at last byte", buf: "aaaaaaaaaaaaaaa,", from: 0, want: 15},
		{name: "from at end of buffer", buf: "a,b", from: 3, want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IndexAny3From([]byte(tt.buf), tt.from, ',', '\n', '\r')
			if got != tt.want {
				t.Errorf("IndexAny3From(%q, %d) = %d, want %d", tt.buf, tt.from, got, tt.want)
			}
		})
	}
}

// TestIndexAny3From_MatchesNaiveScan cross-checks the SWAR path against a
// byte-by-byte reference over every offset of a mixed buffer.
func TestIndexAny3From_MatchesNaiveScan(t *testing.T) {
	buf := []byte("aa,bb\r\ncc\"dd,,\neeeeeeeeeeeeeeeee,fff\nggg")
	naive := func(from int) int {
		for i := from; i < len(buf); i++ {
			if buf[i] == ',' || buf[i] == '\n' || buf[i] == '\r' {
				return i
			}
		}
		return -1
	}

	for from := 0; from <= len(buf); from++ {
		want := naive(from)
		got := IndexAny3From(buf, from, ',', '\n', '\r')
		if got != want {
			t.Errorf("from=%d: got %d, want %d", from, got, want)
		}
	}
}

// TestIndexAny3From_AllByteValues ensures the SWAR masks do not produce
// false positives for any byte value adjacent to the match set.
func TestIndexAny3From_AllByteValues(t *testing.T) {
	for b := 0; b < 256; b++ {
		buf := bytes.Repeat([]byte{byte(b)}, 16)
		got := IndexAny3From(buf, 0, ',', '\n', '\r')
		want := -1
		if byte(b) == ',' || byte(b) == '\n' || byte(b) == '\r' {
			want = 0
		}
		if got != want {
			t.Errorf("byte 0x%02x: got %d, want %d", b, got, want)
		}
	}
}

func BenchmarkIndexAny3From(b *testing.B) {
	buf := []byte(strings.Repeat("abcdefghijklmnop", 4096) + ",")
	b.SetBytes(int64(len(buf)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if IndexAny3From(buf, 0, ',', '\n', '\r') != len(buf)-1 {
			b.Fatal("unexpected match position")
		}
	}
}
