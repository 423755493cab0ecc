package exporthtml

import "testing"

func TestEncodeContent(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain text unchanged",
			in:   "hello world",
			want: "hello world",
		},
		{
			name: "markup characters escaped once",
			in:   "a < b & c > d",
			want: "a &lt; b &amp; c &gt; d",
		},
		{
			name: "already escaped text escapes its ampersand",
			in:   "a &lt; b",
			want: "a &amp;lt; b",
		},
		{
			name: "non-breaking space becomes named entity",
			in:   "a b",
			want: "a&nbsp;b",
		},
		{
			name: "newline becomes break element plus newline",
			in:   "a\nb",
			want: "a<br/>\nb",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := encodeContent(tt.in); got != tt.want {
				t.Errorf("encodeContent(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEncodeAttr(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "quote escaped",
			in:   `say "hi"`,
			want: "say &quot;hi&quot;",
		},
		{
			name: "url query escaped",
			in:   `https://x?a=1&b=2`,
			want: "https://x?a=1&amp;b=2",
		},
		{
			name: "whitespace left alone",
			in:   "a  b\nc",
			want: "a  b\nc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := encodeAttr(tt.in); got != tt.want {
				t.Errorf("encodeAttr(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPreserveWhitespace(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "interior single spaces untouched",
			in:   "a b c",
			want: "a b c",
		},
		{
			name: "leading and trailing spaces preserved",
			in:   " a ",
			want: " a ",
		},
		{
			name: "space runs alternate preserved and plain",
			in:   "  a  b  ",
			want: "  a  b  ",
		},
		{
			name: "single space is both leading and trailing",
			in:   " ",
			want: " ",
		},
		{
			name: "decision looks at original neighbors",
			in:   "a   b",
			want: "a   b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := preserveWhitespace(tt.in); got != tt.want {
				t.Errorf("preserveWhitespace(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
