package extract

import (
	"regexp"
	"strconv"
	"strings"
)

var wordNumbers = map[string]int{
	"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10, "eleven": 11,
	"twelve": 12, "thirteen": 13, "fourteen": 14, "fifteen": 15,
	"sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19,
	"twenty": 20, "thirty": 30, "forty": 40, "fifty": 50, "sixty": 60,
}

// numberAlt matches a digit run or any spelled-out number above.
const numberAlt = `(?:\d+|zero|one|two|three|four|five|six|seven|eight|nine|ten|eleven|twelve|thirteen|fourteen|fifteen|sixteen|seventeen|eighteen|nineteen|twenty|thirty|forty|fifty|sixty)`

var hourUnitRe = regexp.MustCompile(`(?i)^(?:hours?|hrs?)$`)

// toNumber converts a digit or spelled-out number token.
func toNumber(tok string) (int, bool) {
	if n, err := strconv.Atoi(tok); err == nil {
		return n, true
	}
	n, ok := wordNumbers[strings.ToLower(tok)]
	return n, ok
}

// toMinutes converts an amount and its unit ("hour", "mins", ...) to minutes.
func toMinutes(amount, unit string) (int, bool) {
	n, ok := toNumber(amount)
	if !ok || n < 0 {
		return 0, false
	}
	if hourUnitRe.MatchString(unit) {
		return n * 60, true
	}
	return n, true
}
