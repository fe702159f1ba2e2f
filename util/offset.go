package util

import (
	"regexp"
	"strconv"
	"strings"
)

// Strike offsets are ATM or a direction with 1-50 steps: ITM2, OTM15.
var offsetPattern = regexp.MustCompile(`^(ATM|(ITM|OTM)([1-9]|[1-4][0-9]|50))$`)

// ParseOffset decodes an offset token case-insensitively. ATM yields
// zero steps; otherwise direction is ITM or OTM.
func ParseOffset(offset string) (direction string, steps int, ok bool) {
	match := offsetPattern.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(offset)))
	if match == nil {
		return "", 0, false
	}
	if match[1] == "ATM" {
		return "ATM", 0, true
	}
	steps, _ = strconv.Atoi(match[3])
	return match[2], steps, true
}
