// Package preset holds the named benchmark file configurations.
package preset

import (
	"math/rand/v2"
	"path/filepath"

	"pkg.jsn.cam/sorgen/pkg/sor"
)

// Preset is a fixed row count, schema and output file name
type Preset struct {
	Name   string
	Rows   int64
	Output string
	Schema sor.Schema
}

// benchSchema is the ten column layout every preset shares
var benchSchema = sor.Schema{
	sor.Float, sor.String, sor.Int, sor.Bool,
	sor.Float, sor.String, sor.Int, sor.Bool,
	sor.Float, sor.String,
}

// Path returns where the preset writes its file inside dir
func (p Preset) Path(dir string) string {
	return filepath.Join(dir, p.Output)
}

// Run writes the preset's file into dir
func (p Preset) Run(dir string, r *rand.Rand, opts ...sor.Option) (sor.Stats, error) {
	return sor.WriteFile(p.Path(dir), r, p.Rows, p.Schema, opts...)
}

// NewRand returns a PCG-backed generator seeded with seed1 and seed2
func NewRand(seed1, seed2 uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed1, seed2))
}

// RandomSeed draws a fresh seed pair from the runtime's random source
func RandomSeed() (uint64, uint64) {
	return rand.Uint64(), rand.Uint64()
}

func runRandom(name, dir string) (sor.Stats, error) {
	p, err := Get(name)
	if err != nil {
		return sor.Stats{}, err
	}
	return p.Run(dir, NewRand(RandomSeed()))
}

// GenLarge writes datafile.txt (2,000,000 rows) into dir
func GenLarge(dir string) (sor.Stats, error) {
	return runRandom(Large, dir)
}

// GenTiny writes tiny.txt (100 rows) into dir
func GenTiny(dir string) (sor.Stats, error) {
	return runRandom(Tiny, dir)
}

// GenMedium writes med.txt (10,000 rows) into dir
func GenMedium(dir string) (sor.Stats, error) {
	return runRandom(Medium, dir)
}
