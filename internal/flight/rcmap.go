package flight

import (
	"errors"
	"strings"
)

// RCChannelLetters names the RC inputs in rcmap index order: aileron,
// elevator, throttle, rudder and four auxiliary channels.
const RCChannelLetters = "AETR1234"

// ErrInvalidRCMap is returned for a channel assignment that is not a
// permutation of RCChannelLetters.
var ErrInvalidRCMap = errors.New("must be any order of " + RCChannelLetters)

// DefaultRCMap returns the identity channel assignment.
func DefaultRCMap() [RCChannels]uint8 {
	var m [RCChannels]uint8
	for i := range m {
		m[i] = uint8(i)
	}
	return m
}

// ParseRCMap converts an eight letter assignment such as "TAER1234" into a
// channel map. Letters are case-insensitive and each must appear once.
func ParseRCMap(s string) ([RCChannels]uint8, error) {
	var m [RCChannels]uint8
	if len(s) != RCChannels {
		return m, ErrInvalidRCMap
	}
	s = strings.ToUpper(s)
	for i := 0; i < len(s); i++ {
		if !strings.ContainsRune(RCChannelLetters, rune(s[i])) || strings.IndexByte(s[i+1:], s[i]) >= 0 {
			return m, ErrInvalidRCMap
		}
	}
	for pos := 0; pos < len(s); pos++ {
		m[strings.IndexByte(RCChannelLetters, s[pos])] = uint8(pos)
	}
	return m, nil
}

// RCMapString renders a channel map in the form accepted by ParseRCMap.
func RCMapString(m [RCChannels]uint8) string {
	out := []byte(strings.Repeat("?", RCChannels))
	for i, pos := range m {
		if int(pos) < RCChannels {
			out[pos] = RCChannelLetters[i]
		}
	}
	return string(out)
}
