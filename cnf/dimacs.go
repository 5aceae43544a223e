package cnf

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseDIMACS reads a formula in DIMACS CNF format, the standard exchange
// format for SAT problems. It is a direct adaptation of gophersat's
// solver/parser.go ParseCNF, kept in its own file to keep the
// parsing/engine boundary visible: nothing under sat, gf2, xorgen,
// simplify, enumerate or counter ever reads a DIMACS stream.
//
// Lines starting with 'c' are comments and are skipped. The header line
// "p cnf <nbvars> <nbclauses>" must appear before any clause. Each clause
// is a whitespace-separated list of nonzero signed integers terminated
// by 0.
func ParseDIMACS(f io.Reader) (*Formula, error) {
	r := bufio.NewReader(f)
	var (
		form      Formula
		nbClauses int
		sawHeader bool
	)

	b, err := r.ReadByte()
	for err == nil {
		switch {
		case b == 'c':
			for err == nil && b != '\n' {
				b, err = r.ReadByte()
			}
		case b == 'p':
			form.NbVars, nbClauses, err = parseDIMACSHeader(r)
			if err != nil {
				return nil, fmt.Errorf("cannot parse CNF header: %v", err)
			}
			form.Clauses = make([]Clause, 0, nbClauses)
			sawHeader = true
		case isDimacsSpace(b):
			// Blank line between clauses or at EOF.
		default:
			if !sawHeader {
				return nil, fmt.Errorf("clause found before 'p cnf' header")
			}
			lits := make([]Lit, 0, 3)
			for {
				val, rerr := readDIMACSInt(&b, r)
				if rerr == io.EOF {
					if len(lits) != 0 {
						return nil, fmt.Errorf("unfinished clause at EOF")
					}
					break
				}
				if rerr != nil {
					return nil, fmt.Errorf("cannot parse clause: %v", rerr)
				}
				if val == 0 {
					form.Clauses = append(form.Clauses, lits)
					break
				}
				if val > form.NbVars || -val > form.NbVars {
					return nil, fmt.Errorf("literal %d out of range for %d vars", val, form.NbVars)
				}
				lits = append(lits, Lit(val))
			}
		}
		b, err = r.ReadByte()
	}
	if err != io.EOF {
		return nil, err
	}
	if !sawHeader {
		return nil, fmt.Errorf("missing 'p cnf' header")
	}
	return &form, nil
}

func parseDIMACSHeader(r *bufio.Reader) (nbVars, nbClauses int, err error) {
	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return 0, 0, fmt.Errorf("cannot read header: %v", err)
	}
	fields := strings.Fields(line)
	if len(fields) < 3 || fields[0] != "cnf" {
		return 0, 0, fmt.Errorf("invalid header %q", "p "+line)
	}
	nbVars, aerr := strconv.Atoi(fields[1])
	if aerr != nil {
		return 0, 0, fmt.Errorf("nbvars not an int: %q", fields[1])
	}
	nbClauses, aerr = strconv.Atoi(fields[2])
	if aerr != nil {
		return 0, 0, fmt.Errorf("nbclauses not an int: %q", fields[2])
	}
	return nbVars, nbClauses, nil
}

func isDimacsSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func readDIMACSInt(b *byte, r *bufio.Reader) (int, error) {
	var err error
	for err == nil && isDimacsSpace(*b) {
		*b, err = r.ReadByte()
	}
	if err == io.EOF {
		return 0, io.EOF
	}
	if err != nil {
		return 0, fmt.Errorf("could not read digit: %v", err)
	}
	neg := 1
	if *b == '-' {
		neg = -1
		*b, err = r.ReadByte()
		if err != nil {
			return 0, fmt.Errorf("cannot read int: %v", err)
		}
	}
	res := 0
	for err == nil && *b >= '0' && *b <= '9' {
		res = res*10 + int(*b-'0')
		*b, err = r.ReadByte()
	}
	if err != nil && err != io.EOF {
		return 0, err
	}
	return neg * res, nil
}
