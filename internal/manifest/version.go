package manifest

import (
	"fmt"

	"golang.org/x/mod/semver"
)

// FormatVersion identifies the generator output. The major version changes
// whenever the same seed would no longer produce the same bytes.
const FormatVersion = "v1.0.0"

// IsCompatibleVersion reports whether a file recorded at version can be
// rebuilt by this generator. Major versions must match exactly.
func IsCompatibleVersion(version string) (bool, error) {
	if !semver.IsValid(version) {
		return false, fmt.Errorf("invalid format version: %s", version)
	}
	return semver.Major(version) == semver.Major(FormatVersion), nil
}

// CheckReplayable returns an error unless run can be regenerated byte for byte
func CheckReplayable(run *Run) error {
	ok, err := IsCompatibleVersion(run.Version)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: run %s was written by %s, generator is %s.x.x",
			ErrIncompatibleVersion, run.ID, run.Version, semver.Major(FormatVersion))
	}
	return nil
}
