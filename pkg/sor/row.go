package sor

import "math/rand/v2"

// AppendRow appends one generated row, newline included, to dst
func AppendRow(dst []byte, r *rand.Rand, schema Schema) []byte {
	for _, ft := range schema {
		dst = AppendField(dst, r, ft)
	}
	return append(dst, '\n')
}

// GenRow returns one generated row with a trailing newline
func GenRow(r *rand.Rand, schema Schema) string {
	return string(AppendRow(nil, r, schema))
}
