package cnf

import (
	"strings"
	"testing"
)

func TestParseDIMACSBasic(t *testing.T) {
	src := "c a comment\np cnf 3 2\n1 -2 0\n2 3 0\n"
	f, err := ParseDIMACS(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.NbVars != 3 {
		t.Errorf("expected 3 vars, got %d", f.NbVars)
	}
	if len(f.Clauses) != 2 {
		t.Fatalf("expected 2 clauses, got %d", len(f.Clauses))
	}
	if len(f.Clauses[0]) != 2 || f.Clauses[0][0] != 1 || f.Clauses[0][1] != -2 {
		t.Errorf("unexpected first clause: %v", f.Clauses[0])
	}
	if len(f.Clauses[1]) != 2 || f.Clauses[1][0] != 2 || f.Clauses[1][1] != 3 {
		t.Errorf("unexpected second clause: %v", f.Clauses[1])
	}
}

func TestParseDIMACSMissingHeader(t *testing.T) {
	_, err := ParseDIMACS(strings.NewReader("1 -2 0\n"))
	if err == nil {
		t.Fatal("expected error for missing header")
	}
}

func TestParseDIMACSLiteralOutOfRange(t *testing.T) {
	_, err := ParseDIMACS(strings.NewReader("p cnf 2 1\n3 0\n"))
	if err == nil {
		t.Fatal("expected error for out-of-range literal")
	}
}

func TestParseDIMACSEmptyFormula(t *testing.T) {
	f, err := ParseDIMACS(strings.NewReader("p cnf 5 0\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.NbVars != 5 || len(f.Clauses) != 0 {
		t.Errorf("unexpected formula: %+v", f)
	}
}
