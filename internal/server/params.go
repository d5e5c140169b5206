package server

import (
	"math"
	"net/url"
	"strconv"
	"strings"
	"unicode"

	"github.com/gofiber/fiber/v2"
)

// maxSafeInteger is the largest integer a float64 holds exactly.
const maxSafeInteger = 1<<53 - 1

// idParam returns the decoded :id path segment.
func idParam(c *fiber.Ctx) string {
	raw := c.Params("id")
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

// parseLeadingInt reads an integer from the start of s the way a lenient
// integer parser does: leading whitespace and a sign are skipped, then the
// longest run of digits is used and the rest ignored. A 0x prefix switches to
// hex. "2abc" and "2.5" both give 2; a string without digits gives false.
func parseLeadingInt(s string) (int, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	sign := ""
	if s != "" && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			sign = "-"
		}
		s = s[1:]
	}

	base, isDigit := 10, isDecimalDigit
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base, isDigit = 16, isHexDigit
		s = s[2:]
	}
	end := 0
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	if end == 0 {
		return 0, false
	}

	n, err := strconv.ParseInt(sign+s[:end], base, 0)
	if err != nil {
		return 0, false
	}
	return int(n), true
}

// parseNumberID converts the whole of s to a number and reports it as an id
// only when the value is integral. Surrounding whitespace is ignored, a blank
// string is 0, and 0x/0o/0b prefixes select the base. "2.0" and "2e0" give 2;
// "2.5" and "2abc" give false.
func parseNumberID(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}

	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			digits := s[2:]
			if digits[0] == '+' || digits[0] == '-' {
				return 0, false
			}
			n, err := strconv.ParseInt(digits, base, 0)
			if err != nil {
				return 0, false
			}
			return int(n), true
		}
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if math.Abs(f) > maxSafeInteger {
		return 0, false
	}
	return int(f), true
}

func isDecimalDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isHexDigit(b byte) bool {
	return isDecimalDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
