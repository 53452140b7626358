// Package version parses the specification versions declared by documents.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

type Version struct {
	Major int
	Minor int
	Patch int
}

func New(major, minor, patch int) *Version {
	return &Version{
		Major: major,
		Minor: minor,
		Patch: patch,
	}
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// SameMajor reports whether v and other share a major version.
func (v Version) SameMajor(other Version) bool {
	return v.Major == other.Major
}

// Parse parses major.minor or major.minor.patch, as declared by the swagger and openapi fields.
// A missing patch is zero.
func Parse(version string) (*Version, error) {
	parts := strings.Split(strings.TrimSpace(version), ".")
	if len(parts) < 2 || len(parts) > 3 {
		return nil, fmt.Errorf("invalid version `%s`", version)
	}

	numbers := [3]int{}
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid version `%s`: %w", version, err)
		}
		if n < 0 {
			return nil, fmt.Errorf("invalid version `%s`: %s cannot be negative", version, part)
		}
		numbers[i] = n
	}

	return New(numbers[0], numbers[1], numbers[2]), nil
}
