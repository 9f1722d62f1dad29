package ch3w

import "strconv"

// saltOf returns the salt appended to the key on attempt i. Attempt 0 uses
// no salt, so the first probe reproduces the unsalted base placement.
// Every later attempt uses the digit-reversed decimal of i: salt(1) = "1",
// salt(10) = "01", salt(21) = "12".
//
// The exact bytes are load-bearing. Every process routing against the same
// pool must derive identical salted keys for identical attempts, and any
// change to this rule silently reshuffles keys that are already placed.
func saltOf(i int) []byte {
	if i == 0 {
		return nil
	}

	s := []byte(strconv.Itoa(i))
	for l, r := 0, len(s)-1; l < r; l, r = l+1, r-1 {
		s[l], s[r] = s[r], s[l]
	}

	return s
}
