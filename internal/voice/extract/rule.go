package extract

import "regexp"

// amountRule is one entry of an ordered "amount + unit" rule table. The
// first rule whose pattern matches with a usable number wins.
type amountRule struct {
	name  string
	regex *regexp.Regexp
}

func firstAmount(rules []amountRule, text string) (int, bool) {
	for _, r := range rules {
		m := r.regex.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if minutes, ok := toMinutes(m[1], m[2]); ok {
			return minutes, true
		}
	}
	return 0, false
}

// keywordRule maps a keyword pattern to the value it sets.
type keywordRule[T any] struct {
	regex *regexp.Regexp
	value T
}

func firstKeyword[T any](rules []keywordRule[T], text string) (T, bool) {
	for _, r := range rules {
		if r.regex.MatchString(text) {
			return r.value, true
		}
	}
	var zero T
	return zero, false
}
