package quotemodel

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ReferencePrefix starts every public quote reference.
const ReferencePrefix = "GT"

var referencePattern = regexp.MustCompile(`^GT-\d{4}-\d{4}$`)

// IsValidReference reports whether ref has the GT-YYYY-NNNN shape.
func IsValidReference(ref string) bool {
	return referencePattern.MatchString(ref)
}

// GenerateReferenceNumber returns the next reference for the year of now.
//
// Only references carrying the current year prefix are considered; the
// sequence is the highest trailing number among them plus one, zero-padded to
// four digits. A segment without leading digits counts as zero.
//
// The result is unique only when existing is complete. Callers must serialize
// reading existing references and persisting the new quote.
func GenerateReferenceNumber(existing []string, now time.Time) string {
	prefix := yearPrefix(now)

	highest := 0
	for _, ref := range existing {
		if !strings.HasPrefix(ref, prefix) {
			continue
		}
		if seq := leadingInt(strings.TrimPrefix(ref, prefix)); seq > highest {
			highest = seq
		}
	}

	return fmt.Sprintf("%s%04d", prefix, highest+1)
}

func yearPrefix(now time.Time) string {
	return fmt.Sprintf("%s-%d-", ReferencePrefix, now.Year())
}

// leadingInt parses the run of ASCII digits at the start of s.
func leadingInt(s string) int {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
