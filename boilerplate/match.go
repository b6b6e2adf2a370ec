// © 2026 Smallbit Matters. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package boilerplate

import (
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/smallbitmatters/boilerplate/unwrap"
)

// firstYear is the earliest copyright year a header may carry.
const firstYear = 2014

// datePattern returns a regexp matching any single year from firstYear
// through lastYear, combined via alternation.
func datePattern(lastYear int) *regexp.Regexp {
	years := make([]string, 0, lastYear-firstYear+1)
	for y := firstYear; y <= lastYear; y++ {
		years = append(years, strconv.Itoa(y))
	}
	return unwrap.Value(regexp.Compile("(" + strings.Join(years, "|") + ")"))
}

// matches reports whether candidate begins with the header in ref.
//
// Only the first len(ref) lines of candidate are examined. The first line of
// that prefix carrying an in-range year has every such year on it replaced
// with [YearToken]; substitution then stops, so a second year-bearing line is
// compared literally and fails the equality check. The prefix is scanned for
// a literal [YearToken] BEFORE substitution: a stray placeholder anywhere in
// the prefix fails, even after the line that gets substituted.
func matches(candidate, ref []string, dates *regexp.Regexp) bool {
	// A file shorter than the reference can never match.
	if len(ref) > len(candidate) {
		return false
	}
	prefix := slices.Clone(candidate[:len(ref)])

	for _, line := range prefix {
		if strings.Contains(line, YearToken) {
			return false
		}
	}

	for i, line := range prefix {
		if dates.MatchString(line) {
			prefix[i] = dates.ReplaceAllString(line, YearToken)
			break
		}
	}

	return slices.Equal(prefix, ref)
}
