// Package durafield is a terminal input field for time durations, built as a
// Bubble Tea component.
//
// The editor package holds the component. The duration package models the
// value and its ISO-8601 form; segment describes the "1d 2h 3m 4s" field
// grammar. Both are usable without the component.
package durafield

import (
	_ "embed"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var ErrNotSemver = errors.New("durafield: not a SemVer 2.0.0 version")

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Version returns the module version in SemVer format (without `v`).
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns the git tag form of Version.
func VersionTag() string {
	return "v" + Version()
}

// IsSemver reports whether v matches SemVer 2.0.0. A leading `v` is not
// accepted; use ParseVersion for tags.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}

// ParseVersion returns the numeric core of a version or tag ("1.2.3",
// "v1.2.3-rc.1"). Pre-release and build metadata are dropped.
func ParseVersion(v string) (major, minor, patch int, err error) {
	s := strings.TrimPrefix(strings.TrimSpace(v), "v")
	m := semverRE.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrNotSemver, v)
	}
	nums := make([]int, 3)
	for i := range nums {
		n, convErr := strconv.Atoi(m[i+1])
		if convErr != nil {
			return 0, 0, 0, fmt.Errorf("%w: %q: %v", ErrNotSemver, v, convErr)
		}
		nums[i] = n
	}
	return nums[0], nums[1], nums[2], nil
}
