package quotemodel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateReferenceNumber(t *testing.T) {
	now := time.Date(2025, time.June, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		existing []string
		expected string
	}{
		{name: "empty store", existing: nil, expected: "GT-2025-0001"},
		{name: "sequential", existing: []string{"GT-2025-0001", "GT-2025-0002"}, expected: "GT-2025-0003"},
		{name: "unordered uses max", existing: []string{"GT-2025-0007", "GT-2025-0003"}, expected: "GT-2025-0008"},
		{name: "other years ignored", existing: []string{"GT-2024-0099", "GT-2025-0004"}, expected: "GT-2025-0005"},
		{name: "only previous year", existing: []string{"GT-2024-0042"}, expected: "GT-2025-0001"},
		{name: "non matching shapes ignored", existing: []string{"BAD-REF", "", "gt-2025-0009", "GT-2025-abcd"}, expected: "GT-2025-0001"},
		{name: "overflow keeps counting", existing: []string{"GT-2025-9999"}, expected: "GT-2025-10000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GenerateReferenceNumber(tt.existing, now))
		})
	}
}

func TestIsValidReference(t *testing.T) {
	assert.True(t, IsValidReference("GT-2025-0001"))
	assert.False(t, IsValidReference("BAD-REF"))
	assert.False(t, IsValidReference("GT-25-0001"))
	assert.False(t, IsValidReference("GT-2025-00001"))
	assert.False(t, IsValidReference(" GT-2025-0001"))
}
