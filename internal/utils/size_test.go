package utils_test

import (
	"testing"

	"github.com/outlinekit/outline/internal/utils"
)

func TestFormatByteSize(t *testing.T) {
	testCases := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "zero", bytes: 0, expected: "0.0 B"},
		{name: "bytes", bytes: 512, expected: "512.0 B"},
		{name: "one kilobyte", bytes: 1024, expected: "1.0 KB"},
		{name: "fractional kilobyte", bytes: 1536, expected: "1.5 KB"},
		{name: "megabytes", bytes: 10 * 1024 * 1024, expected: "10.0 MB"},
		{name: "gigabytes", bytes: 3 * 1024 * 1024 * 1024, expected: "3.0 GB"},
		{name: "terabyte cap", bytes: 2048 * 1024 * 1024 * 1024 * 1024, expected: "2048.0 TB"},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			result := utils.FormatByteSize(testCase.bytes)
			if result != testCase.expected {
				t.Fatalf("expected %s, got %s", testCase.expected, result)
			}
		})
	}
}
