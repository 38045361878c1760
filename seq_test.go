package biocat

import (
	"bytes"
	"testing"
)

func TestClean(t *testing.T) {
	tests := []struct {
		raw      string
		alphabet Alphabet
		want     string
	}{
		{"at-gc 123", DNA, "ATGC"},
		{"ATGC", DNA, "ATGC"},
		{"acgt\nNNN\tacgt", DNA, "ACGTNNNACGT"},
		{"", DNA, ""},
		{"xyz!?", StrictDNA, ""},
		{"mkv*lt", Protein, "MKV*LT"},
		{"B J O U", Protein, ""},
	}
	for _, tt := range tests {
		if got := Clean(tt.raw, tt.alphabet); got != tt.want {
			t.Errorf("Clean(%q, %s) = %q, want %q", tt.raw, tt.alphabet.Name, got, tt.want)
		}
	}
}

func TestCleanIdempotent(t *testing.T) {
	s := Clean("atg ccn", DNA)
	if again := Clean(s, DNA); again != s {
		t.Errorf("Clean not idempotent: %q != %q", again, s)
	}
}

func TestCleanPattern(t *testing.T) {
	got, err := CleanPattern("xxAtCgxx")
	if err != nil {
		t.Fatalf("CleanPattern: %v", err)
	}
	if got != "ATCG" {
		t.Errorf("CleanPattern = %q, want ATCG", got)
	}

	if _, err := CleanPattern("AT"); err != ErrInvalidPattern {
		t.Errorf("short pattern: got %v, want ErrInvalidPattern", err)
	}
	// N is not a searchable base.
	if _, err := CleanPattern("NNNN"); err != ErrInvalidPattern {
		t.Errorf("N-only pattern: got %v, want ErrInvalidPattern", err)
	}
}

func TestReverseComplement(t *testing.T) {
	got := ReverseComplement([]byte("ATGC"))
	if !bytes.Equal(got, []byte("GCAT")) {
		t.Errorf("ReverseComplement(ATGC) = %s, want GCAT", got)
	}
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		err  error
		want Status
	}{
		{nil, StatusOK},
		{ErrEmptyInput, StatusEmpty},
		{ErrNoData, StatusEmpty},
		{ErrInputTooShort, StatusShort},
		{ErrInvalidPattern, StatusError},
	}
	for _, tt := range tests {
		if got := StatusOf(tt.err); got != tt.want {
			t.Errorf("StatusOf(%v) = %s, want %s", tt.err, got, tt.want)
		}
	}
}
