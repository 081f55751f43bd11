package dashboard

import (
	"time"

	"weather-dashboard/models"

	"golang.org/x/text/language"
)

// DefaultLocale is used when the client sends no usable Accept-Language header
var DefaultLocale = language.AmericanEnglish

// the first entry is the fallback of the matcher
var supportedLocales = []language.Tag{
	language.AmericanEnglish,
	language.BritishEnglish,
	language.German,
	language.French,
	language.Spanish,
}

var localeMatcher = language.NewMatcher(supportedLocales)

// short day/month plus hour:minute, the way each locale writes it
var timeLayouts = map[language.Tag]string{
	language.AmericanEnglish: "01/02, 03:04 PM",
	language.BritishEnglish:  "02/01, 15:04",
	language.German:          "02.01., 15:04",
	language.French:          "02/01 15:04",
	language.Spanish:         "02/01, 15:04",
}

// MatchLocale picks the best supported locale for an Accept-Language header value
func MatchLocale(acceptLanguage string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLocale
	}
	_, index, _ := localeMatcher.Match(tags...)
	return supportedLocales[index]
}

// LocaleTimeLayout returns the chart label layout for a locale
func LocaleTimeLayout(locale language.Tag) string {
	if layout, ok := timeLayouts[locale]; ok {
		return layout
	}
	_, index, _ := localeMatcher.Match(locale)
	return timeLayouts[supportedLocales[index]]
}

// FormatHour turns an hourly timestamp of the forecast into a chart label.
// Timestamps that do not parse are returned unchanged.
func FormatHour(ts string, loc *time.Location, layout string) string {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(models.TimeLayout, ts, loc)
	if err != nil {
		return ts
	}
	return t.Format(layout)
}
