package slash

import "golang.org/x/text/language"

// SupportedLocales are the languages tool frontmatter is written in. The
// first entry is the fallback.
var SupportedLocales = []language.Tag{
	language.English,
	language.SimplifiedChinese,
}

var localeMatcher = language.NewMatcher(SupportedLocales)

// MatchLocale picks the supported locale closest to the given preferences
// (BCP 47 tags or Accept-Language strings). Unknown or empty preferences
// select English.
func MatchLocale(prefs ...string) language.Tag {
	_, index := language.MatchStrings(localeMatcher, prefs...)
	return SupportedLocales[index]
}
