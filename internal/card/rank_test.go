package card

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elyby/hyfetch/internal/profile"
)

const (
	green = "\033[38;2;85;255;85m"
	aqua  = "\033[38;2;85;255;255m"
	gold  = "\033[38;2;255;170;0m"
	red   = "\033[38;2;255;85;85m"
	blue  = "\033[38;2;85;85;255m"
)

func TestResolveRank(t *testing.T) {
	testCases := map[string]struct {
		summary  *profile.Summary
		expected string
	}{
		"no rank": {
			summary:  &profile.Summary{},
			expected: "non",
		},
		"explicit NONE": {
			summary:  &profile.Summary{NewPackageRank: "NONE", PackageRank: "NONE"},
			expected: "non",
		},
		"vip": {
			summary:  &profile.Summary{NewPackageRank: "VIP"},
			expected: green + "VIP" + Reset,
		},
		"vip plus with default plus color": {
			summary:  &profile.Summary{NewPackageRank: "VIP_PLUS"},
			expected: green + "VIP" + gold + "+" + Reset,
		},
		"vip plus with custom plus color": {
			summary:  &profile.Summary{NewPackageRank: "VIP_PLUS", RankPlusColor: "BLUE"},
			expected: green + "VIP" + blue + "+" + Reset,
		},
		"mvp plus with default plus color": {
			summary:  &profile.Summary{NewPackageRank: "MVP_PLUS"},
			expected: aqua + "MVP" + red + "+" + Reset,
		},
		"mvp plus with unknown custom plus color falls back to default": {
			summary:  &profile.Summary{NewPackageRank: "MVP_PLUS", RankPlusColor: "RAINBOW"},
			expected: aqua + "MVP" + red + "+" + Reset,
		},
		"superstar replaces only the first plus": {
			summary:  &profile.Summary{NewPackageRank: "MVP_PLUS", MonthlyPackageRank: "SUPERSTAR", RankPlusColor: "GOLD"},
			expected: aqua + "MVP" + gold + "++" + Reset,
		},
		"legacy package rank": {
			summary:  &profile.Summary{PackageRank: "MVP"},
			expected: aqua + "MVP" + Reset,
		},
		"staff rank wins over package rank": {
			summary:  &profile.Summary{NewPackageRank: "MVP_PLUS", StaffRank: "HELPER"},
			expected: blue + "HELPER" + Reset,
		},
		"unknown rank is shown raw and uncolored": {
			summary:  &profile.Summary{NewPackageRank: "MYSTERY"},
			expected: Reset + "MYSTERY" + Reset,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ResolveRank(tc.summary))
		})
	}
}
