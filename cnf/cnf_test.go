package cnf

import "testing"

func TestClauseIsSatisfiedUnderAssignment(t *testing.T) {
	c := Clause{1, -2, 3}
	tests := []struct {
		name string
		a    Assignment
		sat  bool
	}{
		{"empty assignment", Assignment{}, false},
		{"satisfied by 1", Assignment{1: true}, true},
		{"unit on 3", Assignment{1: false, 2: true}, false},
		{"conflict", Assignment{1: false, 2: true, 3: false}, false},
	}
	for _, tt := range tests {
		if got := c.IsSatisfied(tt.a); got != tt.sat {
			t.Errorf("%s: IsSatisfied() = %v, want %v", tt.name, got, tt.sat)
		}
	}
}

func TestFormulaString(t *testing.T) {
	f := New(3, []Clause{{1, 2}, {-1, 3}})
	want := "p cnf 3 2\n1 2 0\n-1 3 0\n"
	if got := f.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestFormulaClone(t *testing.T) {
	f := New(2, []Clause{{1, -2}})
	clone := f.Clone()
	clone.Clauses[0][0] = -1
	if f.Clauses[0][0] != 1 {
		t.Errorf("Clone shares storage with the original formula")
	}
}
