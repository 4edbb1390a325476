// Package translate formats user-facing messages for the locale of the host.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const fallback = "en-US"

var printer = message.NewPrinter(language.MustParse(fallback))

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("regasm: locale: %v", err)
	}

	Use(locales...)
}

// Use selects the message language from a list of preferred locales.
// An empty list selects en-US.
func Use(locales ...string) {
	if len(locales) == 0 {
		locales = []string{fallback}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
