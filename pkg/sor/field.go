package sor

import (
	"math/rand/v2"
	"strconv"
)

const (
	intScale     = 100
	floatMillis  = 10_000 // 10.000 in thousandths
	maxStringLen = 7
	alphabet      = "abcdefghijklmnopqrstuvwxyz"
)

type boolField struct{}

func (boolField) Type() Type { return TypeBool }

func (boolField) appendValue(dst []byte, r *rand.Rand) []byte {
	return strconv.AppendInt(dst, int64(r.IntN(2)), 10)
}

type intField struct{}

func (intField) Type() Type { return TypeInt }

// uniform(-1, 1) scaled and truncated toward zero, so the value is in [-100, 100]
func (intField) appendValue(dst []byte, r *rand.Rand) []byte {
	v := int64((r.Float64()*2 - 1) * intScale)
	return strconv.AppendInt(dst, v, 10)
}

type floatField struct{}

func (floatField) Type() Type { return TypeFloat }

// Drawn in whole thousandths so the printed value is always in
// [-10.000, 9.999]; rounding a float64 could print 10.000 or -0.000.
func (floatField) appendValue(dst []byte, r *rand.Rand) []byte {
	k := r.IntN(2*floatMillis) - floatMillis
	if k < 0 {
		dst = append(dst, '-')
		k = -k
	}
	dst = strconv.AppendInt(dst, int64(k/1000), 10)
	dst = append(dst, '.')
	frac := k % 1000
	if frac < 100 {
		dst = append(dst, '0')
	}
	if frac < 10 {
		dst = append(dst, '0')
	}
	return strconv.AppendInt(dst, int64(frac), 10)
}

type stringField struct{}

func (stringField) Type() Type { return TypeString }

func (stringField) appendValue(dst []byte, r *rand.Rand) []byte {
	n := 1 + r.IntN(maxStringLen)
	for i := 0; i < n; i++ {
		dst = append(dst, alphabet[r.IntN(len(alphabet))])
	}
	return dst
}

// AppendField appends one bracket-wrapped random value of type ft to dst
func AppendField(dst []byte, r *rand.Rand, ft FieldType) []byte {
	dst = append(dst, '<')
	dst = ft.appendValue(dst, r)
	return append(dst, '>')
}

// GenField returns one bracket-wrapped random value of type ft, e.g. "<-4.250>"
func GenField(r *rand.Rand, ft FieldType) string {
	return string(AppendField(nil, r, ft))
}
