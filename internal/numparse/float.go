// Package numparse converts operator-typed ASCII text into numbers.
//
// The parsers intentionally do not use strconv. Their grammar and rounding
// match the text that existing flight configurations were written with, so a
// value typed on the console is stored with exactly the same bits it would
// have on the device.
package numparse

// MaxExponent clamps the decimal exponent accepted by ParseFloat.
const MaxExponent = 308

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// ParseFloat converts text of the form
//
//	[spaces][+|-]digits[.digits][(e|E)[+|-]digits]
//
// into a float32. Parsing stops at the first character that does not fit the
// grammar and whatever was accumulated so far is returned, so non-numeric
// text yields 0. There is no error result.
//
// Accumulation happens in float64 and the exponent is applied with a
// table-driven scaling loop (1e50, 1e8, 10) before the final narrowing to
// float32. Exponents larger than MaxExponent are clamped.
func ParseFloat(s string) float32 {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}

	sign := 1.0
	if i < len(s) {
		switch s[i] {
		case '-':
			sign = -1.0
			i++
		case '+':
			i++
		}
	}

	value := 0.0
	for i < len(s) && isDigit(s[i]) {
		value = value*10.0 + float64(s[i]-'0')
		i++
	}

	if i < len(s) && s[i] == '.' {
		pow10 := 10.0
		i++
		for i < len(s) && isDigit(s[i]) {
			value += float64(s[i]-'0') / pow10
			pow10 *= 10.0
			i++
		}
	}

	scale := 1.0
	negExp := false
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) {
			switch s[i] {
			case '-':
				negExp = true
				i++
			case '+':
				i++
			}
		}

		var expon uint32
		for i < len(s) && isDigit(s[i]) {
			expon = expon*10 + uint32(s[i]-'0')
			i++
			if expon > MaxExponent {
				// Keep consuming digits but stop growing.
				expon = MaxExponent + 1
			}
		}
		if expon > MaxExponent {
			expon = MaxExponent
		}

		for expon >= 50 {
			scale *= 1e50
			expon -= 50
		}
		for expon >= 8 {
			scale *= 1e8
			expon -= 8
		}
		for expon > 0 {
			scale *= 10.0
			expon--
		}
	}

	if negExp {
		return float32(sign * (value / scale))
	}
	return float32(sign * (value * scale))
}
