// Package sl10n provides compile-time checked, in-source localized message
// sets. A message set maps typed message keys to per-language template
// strings and substitutes {name} placeholders at lookup time.
//
// Each set defines its own key type, so keys from one set cannot be used
// with another set: mixing them up is a compile error, not a runtime
// surprise. Missing translations degrade to the empty string and unresolved
// placeholders are left verbatim; lookups never fail.
package sl10n

import (
	"sort"
	"strings"
)

// Key is the constraint satisfied by message key types. A key type is a
// closed set of comparable values (typically an integer enum) whose String
// method returns the declared name of the key, used for diagnostics and for
// stable ordering.
type Key interface {
	comparable
	String() string
}

// Params carries placeholder substitutions for a single lookup. For every
// entry, each literal occurrence of "{name}" in the template is replaced by
// the entry's value. A nil Params leaves the template untouched.
type Params map[string]string

// Set is an immutable two-level message table: key → language → template.
// Once constructed it is never mutated, so it may be shared across any
// number of goroutines without synchronization.
type Set[K Key] struct {
	messages map[K]map[string]string
	keys     []K
}

// New builds a Set from a key → language → template definition. The
// definition is copied; later mutation of the argument does not affect the
// set. Key order, as reported by Keys, is sorted by key name. Use a Builder
// when declaration order or definition-time validation is wanted.
func New[K Key](definition map[K]map[string]string) *Set[K] {
	messages := make(map[K]map[string]string, len(definition))
	keys := make([]K, 0, len(definition))
	for key, translations := range definition {
		langs := make(map[string]string, len(translations))
		for lang, tmpl := range translations {
			langs[lang] = tmpl
		}
		messages[key] = langs
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].String() < keys[j].String()
	})

	return &Set[K]{messages: messages, keys: keys}
}

// Get returns the message for key in lang with params substituted.
//
// Resolution is an exact, case-sensitive match on lang with no fallback: if
// the key has no translation for lang, Get returns "". For every params
// entry, each occurrence of the literal "{name}" is replaced by its value.
// Placeholders with no matching param are left verbatim in the output.
// Get never fails; callers needing to distinguish a missing translation
// must check for an empty result themselves.
func (s *Set[K]) Get(key K, lang string, params Params) string {
	translations, ok := s.messages[key]
	if !ok {
		return ""
	}
	tmpl, ok := translations[lang]
	if !ok {
		return ""
	}
	for name, value := range params {
		tmpl = strings.ReplaceAll(tmpl, "{"+name+"}", value)
	}

	return tmpl
}

// T returns the static message for key in lang. It is equivalent to Get
// with nil params.
func (s *Set[K]) T(key K, lang string) string {
	return s.Get(key, lang, nil)
}

// TP returns the message for key in lang with params substituted. It is
// equivalent to Get and exists for call sites where params are always
// present.
func (s *Set[K]) TP(key K, lang string, params Params) string {
	return s.Get(key, lang, params)
}

// Keys returns the message keys of the set. Sets built with New report keys
// sorted by name; sets built with a Builder report them in declaration
// order.
func (s *Set[K]) Keys() []K {
	keys := make([]K, len(s.keys))
	copy(keys, s.keys)
	return keys
}

// Languages returns the sorted language codes key has translations for.
func (s *Set[K]) Languages(key K) []string {
	translations := s.messages[key]
	langs := make([]string, 0, len(translations))
	for lang := range translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)

	return langs
}

// HasLanguage checks whether key has a translation for lang.
func (s *Set[K]) HasLanguage(key K, lang string) bool {
	_, ok := s.messages[key][lang]
	return ok
}

// Len returns the number of message keys in the set.
func (s *Set[K]) Len() int {
	return len(s.keys)
}
