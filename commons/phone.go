// SPDX-License-Identifier: GPL-3.0-only

package commons

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// NormalizeRecipient returns the E.164 form of raw when it can be parsed,
// otherwise raw with surrounding whitespace trimmed. The send path never
// rejects a number here; anything the library cannot make sense of goes to
// the provider unchanged and the provider has the final say.
func NormalizeRecipient(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return trimmed
	}
	parsed, err := parseNumber(trimmed)
	if err != nil {
		return trimmed
	}
	return phonenumbers.Format(parsed, phonenumbers.E164)
}

// RegionForNumber returns a two-letter region hint for log lines, or an empty
// string when the number cannot be resolved to a region.
func RegionForNumber(raw string) string {
	parsed, err := parseNumber(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	return phonenumbers.GetRegionCodeForNumber(parsed)
}

func parseNumber(number string) (*phonenumbers.PhoneNumber, error) {
	if !strings.HasPrefix(number, "+") {
		number = "+" + number
	}
	return phonenumbers.Parse(number, "")
}
