// Package sortest checks generated SoR rows in tests.
package sortest

import (
	"fmt"
	"strconv"
	"strings"

	"pkg.jsn.cam/sorgen/pkg/sor"
)

// CheckRow reports whether line (without its newline) holds one in-domain
// field per schema column and nothing else.
func CheckRow(line string, schema sor.Schema) error {
	rest := line
	for i, ft := range schema {
		if !strings.HasPrefix(rest, "<") {
			return fmt.Errorf("column %d: missing '<' in %q", i, line)
		}
		end := strings.IndexByte(rest, '>')
		if end < 0 {
			return fmt.Errorf("column %d: missing '>' in %q", i, line)
		}
		if err := CheckValue(ft.Type(), rest[1:end]); err != nil {
			return fmt.Errorf("column %d: %w", i, err)
		}
		rest = rest[end+1:]
	}
	if rest != "" {
		return fmt.Errorf("trailing text %q after %d columns", rest, len(schema))
	}
	return nil
}

// CheckValue reports whether v, stripped of brackets, is in the domain of t
func CheckValue(t sor.Type, v string) error {
	switch t {
	case sor.TypeBool:
		if v != "0" && v != "1" {
			return fmt.Errorf("BOOL %q is not 0 or 1", v)
		}
	case sor.TypeInt:
		n, err := strconv.Atoi(v)
		if err != nil || n < -100 || n > 100 || strings.HasPrefix(v, "+") {
			return fmt.Errorf("INT %q is not an integer in [-100, 100]", v)
		}
	case sor.TypeFloat:
		dot := strings.IndexByte(v, '.')
		if dot < 0 || len(v)-dot-1 != 3 {
			return fmt.Errorf("FLOAT %q does not have 3 decimals", v)
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < -10 || f >= 10 || v == "-0.000" {
			return fmt.Errorf("FLOAT %q is not in [-10, 10)", v)
		}
	case sor.TypeString:
		if len(v) < 1 || len(v) > 7 {
			return fmt.Errorf("STRING %q length is not in [1, 7]", v)
		}
		for _, c := range v {
			if c < 'a' || c > 'z' {
				return fmt.Errorf("STRING %q has non lowercase letter %q", v, c)
			}
		}
	default:
		return fmt.Errorf("unexpected column type %s", t)
	}
	return nil
}
