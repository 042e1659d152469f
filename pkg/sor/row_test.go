package sor

import (
	"regexp"
	"strings"
	"testing"
)

var fieldGroup = regexp.MustCompile(`<[^<>]*>`)

// checkRow verifies line holds exactly len(schema) bracket groups plus a newline
func checkRow(t *testing.T, line string, schema Schema) []string {
	t.Helper()

	if !strings.HasSuffix(line, "\n") {
		t.Fatalf("row %q does not end with a newline", line)
	}
	body := strings.TrimSuffix(line, "\n")
	groups := fieldGroup.FindAllString(body, -1)
	if len(groups) != len(schema) {
		t.Fatalf("row %q has %d groups, want %d", line, len(groups), len(schema))
	}
	if strings.Join(groups, "") != body {
		t.Fatalf("row %q has text outside bracket groups", line)
	}
	return groups
}

func TestGenRow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		schema Schema
	}{
		{"empty", Schema{}},
		{"single bool", Schema{Bool}},
		{"int string", Schema{Int, String}},
		{"preset shape", Schema{Float, String, Int, Bool, Float, String, Int, Bool, Float, String}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := newTestRand(7)
			for i := 0; i < 500; i++ {
				checkRow(t, GenRow(r, tt.schema), tt.schema)
			}
		})
	}
}

func TestGenRow_ColumnOrder(t *testing.T) {
	t.Parallel()
	r := newTestRand(8)
	schema := Schema{Bool, String}

	for i := 0; i < 500; i++ {
		groups := checkRow(t, GenRow(r, schema), schema)
		if v := groups[0]; v != "<0>" && v != "<1>" {
			t.Fatalf("first column = %q, want a BOOL", v)
		}
		if v := groups[1]; strings.ContainsAny(v, "0123456789.-") {
			t.Fatalf("second column = %q, want a STRING", v)
		}
	}
}
