package sop

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a document version of the form major.minor.
type Version struct {
	Major int
	Minor int
}

var DefaultVersion = Version{Major: 1, Minor: 0}

// ParseVersion keeps only the digits of each dot-separated component, so "v2.1",
// "2.1-final" and "2 .1" all read as 2.1. A missing minor is 0. Input with no
// digits in the major component yields 1.0.
func ParseVersion(s string) Version {
	parts := strings.SplitN(strings.TrimSpace(s), ".", 3)

	major, ok := digitsOf(parts[0])
	if !ok {
		return DefaultVersion
	}
	minor := 0
	if len(parts) > 1 {
		if n, ok := digitsOf(parts[1]); ok {
			minor = n
		}
	}
	return Version{Major: major, Minor: minor}
}

func digitsOf(s string) (int, bool) {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(b.String())
	if err != nil {
		return 0, false
	}
	return n, true
}

// Next bumps the major component and resets minor.
func (v Version) Next() Version {
	return Version{Major: v.Major + 1, Minor: 0}
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}
