package core

import "golang.org/x/text/language"

// Placeholders are the strings substituted for fields an analysis left empty.
type Placeholders struct {
	Name         string
	Winery       string
	Varietal     string
	Region       string
	Vintage      string
	TastingNotes string
}

var (
	// EnglishPlaceholders is the default set.
	EnglishPlaceholders = Placeholders{
		Name:         "Unknown Wine",
		Winery:       "Unknown Winery",
		Varietal:     "Unknown Varietal",
		Region:       "Unknown Region",
		Vintage:      "N/V",
		TastingNotes: "No AI notes available",
	}

	ChinesePlaceholders = Placeholders{
		Name:         "未知酒款",
		Winery:       "未知酒庄",
		Varietal:     "未知品种",
		Region:       "未知产区",
		Vintage:      "N/V",
		TastingNotes: "暂无AI笔记",
	}
)

// The first entry is the fallback for unmatched locales.
var placeholderLocales = []struct {
	tag  language.Tag
	text Placeholders
}{
	{language.English, EnglishPlaceholders},
	{language.Chinese, ChinesePlaceholders},
}

var placeholderMatcher = func() language.Matcher {
	tags := make([]language.Tag, len(placeholderLocales))
	for i, l := range placeholderLocales {
		tags[i] = l.tag
	}
	return language.NewMatcher(tags)
}()

// PlaceholdersFor resolves a BCP 47 locale ("en", "zh-CN", ...) to a placeholder set.
// Unknown or empty locales get English.
func PlaceholdersFor(locale string) Placeholders {
	if locale == "" {
		return EnglishPlaceholders
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return EnglishPlaceholders
	}
	_, idx, conf := placeholderMatcher.Match(tag)
	if conf == language.No {
		return EnglishPlaceholders
	}
	return placeholderLocales[idx].text
}

// ValidLocale reports whether locale parses as a BCP 47 tag.
func ValidLocale(locale string) bool {
	_, err := language.Parse(locale)
	return err == nil
}
