// Package filter holds the inclusion/exclusion rules applied to channel
// records before they are written. Every function is a pure predicate over a
// single record's fields; callers AND them together, country gate first.
package filter

import (
	"regexp"
	"strings"

	"github.com/openepg/getchannels/internal/models"
)

// countryKeywords maps group-title keywords to a country code. Checked in
// order; the first entry with any matching keyword wins. Matching is plain
// case-sensitive substring search, so short codes can fire inside longer
// words ("RUSSIA" contains "US").
var countryKeywords = []struct {
	code     string
	keywords []string
}{
	{models.CountryCA, []string{"Canada", "CA"}},
	{models.CountryUS, []string{"United States", "USA", "US"}},
	{models.CountryGB, []string{"United Kingdom", "UK", "GB"}},
	{models.CountryAU, []string{"Australia", "AU"}},
}

// blockedGroupWords match as substrings of the normalized group title.
var blockedGroupWords = []string{"sport", "kid", "children", "adult", "xxx", "porn"}

// blockedCategoryNames match as whole entries of an API category list. The
// vocabulary differs from blockedGroupWords ("sports"/"kids" rather than
// "sport"/"kid", no "children"/"porn"); each path keeps its own list.
var blockedCategoryNames = []string{"sports", "kids", "adult", "xxx"}

// newsAllowlist holds the channel names exempt from the news exclusion.
var newsAllowlist = []string{"MSNBC", "CNN", "BBC", "CBC News", "CTV News"}

// groupDelims splits a group title into category tokens.
var groupDelims = regexp.MustCompile(`[|/-]`)

// CountryForGroup derives a country code from a playlist group title.
// Returns "" when no keyword matches; such records are dropped.
func CountryForGroup(group string) string {
	for _, c := range countryKeywords {
		for _, kw := range c.keywords {
			if strings.Contains(group, kw) {
				return c.code
			}
		}
	}
	return ""
}

// AllowedCountry reports whether an API country code is one of the exported
// countries. Exact match only.
func AllowedCountry(code string) bool {
	switch code {
	case models.CountryCA, models.CountryUS, models.CountryGB, models.CountryAU:
		return true
	}
	return false
}

// BlockedGroup reports whether a group title names an excluded content
// category. Keywords match as substrings of the normalized title, so
// "Sports|CA" and "SPORTS/ca" both block.
func BlockedGroup(group string) bool {
	joined := normalizeGroup(group)
	for _, w := range blockedGroupWords {
		if strings.Contains(joined, w) {
			return true
		}
	}
	return false
}

// NewsGroup reports whether a group title carries a news token.
func NewsGroup(group string) bool {
	return strings.Contains(normalizeGroup(group), "news")
}

// BlockedCategories reports whether an API category list (already
// lower-cased) contains an excluded category. Whole entries only; the
// playlist-side substring matching does not apply here.
func BlockedCategories(cats []string) bool {
	for _, c := range cats {
		for _, blocked := range blockedCategoryNames {
			if c == blocked {
				return true
			}
		}
	}
	return false
}

// NewsCategories reports whether an API category list contains "news".
func NewsCategories(cats []string) bool {
	for _, c := range cats {
		if c == "news" {
			return true
		}
	}
	return false
}

// AllowedNewsName reports whether a display name is exempt from the news
// exclusion. Containment, case-sensitive: "CNN International" passes,
// "cnn" does not.
func AllowedNewsName(name string) bool {
	for _, n := range newsAllowlist {
		if strings.Contains(name, n) {
			return true
		}
	}
	return false
}

// HasEnglish reports whether "eng" is among the language codes.
func HasEnglish(codes []string) bool {
	for _, c := range codes {
		if c == "eng" {
			return true
		}
	}
	return false
}

// normalizeGroup lower-cases the delimiter-split group title tokens and
// rejoins them with single spaces.
func normalizeGroup(group string) string {
	parts := groupDelims.Split(group, -1)
	for i, p := range parts {
		parts[i] = strings.ToLower(strings.TrimSpace(p))
	}
	return strings.Join(parts, " ")
}
