package translate

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"simple", "echo hello world", []string{"echo", "hello", "world"}},
		{"double quoted", `echo "hello world"`, []string{"echo", `"hello world"`}},
		{"single quoted", "echo 'hello world'", []string{"echo", "'hello world'"}},
		{"nested quotes", `echo "it's fine"`, []string{"echo", `"it's fine"`}},
		{"escaped space", `echo hello\ world`, []string{"echo", `hello\ world`}},
		{"escaped quote", `echo \"hi`, []string{"echo", `\"hi`}},
		{"collapsed whitespace", "a   b\tc", []string{"a", "b", "c"}},
		{"leading and trailing space", "  ls  ", []string{"ls"}},
		{"unbalanced quote", `echo "unterminated span`, []string{"echo", `"unterminated span`}},
		{"empty", "", nil},
		{"only whitespace", "   ", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Tokenize(tc.in)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", tc.in, diff)
			}
		})
	}
}

func TestEscapeSingleQuoted(t *testing.T) {
	if got := EscapeSingleQuoted("hello"); got != "'hello'" {
		t.Errorf("EscapeSingleQuoted(hello) = %q", got)
	}
	if got := EscapeSingleQuoted("it's"); got != `'it'\''s'` {
		t.Errorf("EscapeSingleQuoted(it's) = %q", got)
	}
	if got := EscapeSingleQuoted(""); got != "''" {
		t.Errorf("EscapeSingleQuoted(empty) = %q", got)
	}
}
