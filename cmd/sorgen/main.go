package main

import (
	"log"
	"os"
	"strings"

	flag "github.com/spf13/pflag"
	"pkg.jsn.cam/sorgen/internal/manifest"
	"pkg.jsn.cam/sorgen/internal/preset"
)

/*generates SoR benchmark files, with no flags it writes med.txt into the working directory*/

var (
	presetName   = flag.String("preset", preset.Default, "Preset to generate: "+strings.Join(preset.List(), ", "))
	outputDir    = flag.String("dir", ".", "Directory to write the data file into")
	seed         = flag.Uint64("seed", 0, "Seed for a reproducible file (random when unset)")
	showProgress = flag.Bool("progress", false, "Draw a progress bar on stderr")
	manifestPath = flag.String("manifest", "", "Record runs in this bbolt manifest database")
	history      = flag.Bool("history", false, "List runs recorded in the manifest")
	replayID     = flag.String("replay", "", "Regenerate the file of a recorded run")
	verbose      = flag.BoolP("verbose", "v", false, "Log a summary of each run")
)

func main() {
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("sorgen: ")

	if (*history || *replayID != "") && *manifestPath == "" {
		log.Fatal("--manifest is required for --history and --replay")
	}

	store, err := openStore(*manifestPath)
	if err != nil {
		log.Fatalf("Failed to open manifest: %v", err)
	}

	switch {
	case *history:
		err = printHistory(os.Stdout, store)
	case *replayID != "":
		dir := ""
		if flag.CommandLine.Changed("dir") {
			dir = *outputDir
		}
		err = replay(store, *replayID, dir)
	default:
		seed1, seed2 := preset.RandomSeed()
		if flag.CommandLine.Changed("seed") {
			seed1, seed2 = *seed, 0
		}
		err = generate(store, *presetName, *outputDir, seed1, seed2)
	}

	if closeErr := store.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		log.Fatal(err)
	}
}

// openStore returns a bbolt manifest, or a throwaway memory one when path is empty
func openStore(path string) (manifest.Store, error) {
	if path == "" {
		return manifest.NewMemoryStore(), nil
	}
	return manifest.NewBoltStore(path)
}
