package utils

import (
	"regexp"
	"strconv"
	"strings"
)

var leadingDigits = regexp.MustCompile(`^\d+`)

// GeneralArticle returns the leading digit run of an article, used to group
// color/size variants of one base product under a single folder.
// Returns "" when the article does not start with a digit.
func GeneralArticle(article string) string {
	return leadingDigits.FindString(article)
}

// SmallSizeLimit is the boundary for regulatory standard selection:
// sizes below it use the small-size standard, 36 and up the big-size one
const SmallSizeLimit = 36

// IsSmallSize reports whether a techsize label refers to a size below the
// small-size limit. The representative number is the digit run after the last
// "-" separator (so "35-36" counts as 36). Labels without a trailing number
// are treated as big sizes.
func IsSmallSize(techSize string) bool {
	parts := strings.Split(techSize, "-")
	last := parts[len(parts)-1]

	digits := leadingDigits.FindString(strings.TrimSpace(last))
	if digits == "" {
		return false
	}

	number, err := strconv.Atoi(digits)
	if err != nil {
		return false
	}
	return number < SmallSizeLimit
}
