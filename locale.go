package sl10n

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// localeEnvVars are checked in order of precedence.
var localeEnvVars = []string{"LC_ALL", "LC_MESSAGES", "LANG", "LANGUAGE"}

// SystemLanguage returns the base language code of the host locale, such as
// "en" or "ru", detected from the usual locale environment variables. It
// returns "" when no locale can be detected. The result is a convenience
// for choosing the lang argument of Set.Get; lookups themselves accept any
// string and perform no fallback.
func SystemLanguage() string {
	for _, envVar := range localeEnvVars {
		locale := os.Getenv(envVar)
		if locale == "" {
			continue
		}
		tag, err := language.Parse(normalizeLocale(locale))
		if err != nil {
			continue
		}
		base, _ := tag.Base()
		return base.String()
	}

	return ""
}

// normalizeLocale converts Unix locale strings to BCP-47.
func normalizeLocale(locale string) string {
	// "en_US.UTF-8" -> "en_US"
	if idx := strings.Index(locale, "."); idx > 0 {
		locale = locale[:idx]
	}
	// "en_US@euro" -> "en_US"
	if idx := strings.Index(locale, "@"); idx > 0 {
		locale = locale[:idx]
	}
	// "en:de:fr" -> "en" (LANGUAGE holds a priority list)
	if idx := strings.Index(locale, ":"); idx > 0 {
		locale = locale[:idx]
	}
	locale = strings.ReplaceAll(locale, "_", "-")

	switch locale {
	case "C", "POSIX":
		return "en-US"
	}

	return locale
}
