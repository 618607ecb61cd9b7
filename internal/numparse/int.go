package numparse

// digitValue returns the value of a hex digit, or -1.
func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	default:
		return -1
	}
}

// parseRaw implements the shared integer grammar:
//
//	[spaces][-]( (x|X)hexdigits | (b|B)bindigits | decdigits )
//
// The radix prefixes are spelled without a leading zero ("xFF", "b101").
// Every remaining character must be a digit of the selected base and at least
// one digit is required. Accumulation wraps silently at 32 bits.
func parseRaw(s string, unsigned bool) (value uint32, negative, ok bool) {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}

	if i < len(s) && s[i] == '-' {
		if unsigned {
			return 0, false, false
		}
		negative = true
		i++
	}

	base := uint32(10)
	if i < len(s) {
		switch s[i] {
		case 'x', 'X':
			base = 16
			i++
		case 'b', 'B':
			base = 2
			i++
		}
	}

	count := 0
	for ; i < len(s); i++ {
		d := digitValue(s[i])
		if d < 0 || uint32(d) >= base {
			return 0, false, false
		}
		value = value*base + uint32(d)
		count++
	}
	if count == 0 {
		return 0, false, false
	}
	return value, negative, true
}

// ParseInt parses a signed 32-bit integer. A leading '-' negates the
// accumulated magnitude with two's complement wrap-around. ok is false when
// the text contains no digits or a character that is not a digit of the
// selected base.
func ParseInt(s string) (v int32, ok bool) {
	raw, negative, ok := parseRaw(s, false)
	if !ok {
		return 0, false
	}
	if negative {
		return -int32(raw), true
	}
	return int32(raw), true
}

// ParseUint parses an unsigned 32-bit integer. A leading '-' is rejected.
func ParseUint(s string) (v uint32, ok bool) {
	raw, _, ok := parseRaw(s, true)
	if !ok {
		return 0, false
	}
	return raw, true
}
