package sl10n

import (
	"errors"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map"
)

// Builder assembles a Set entry by entry, preserving declaration order and
// validating the definition. Declaring the same key twice is an error
// (rather than last-write-wins), as is a key with no translations at all.
// The zero Builder is not usable; construct one with NewBuilder.
type Builder[K Key] struct {
	entries *orderedmap.OrderedMap
	errs    []error
}

// NewBuilder creates an empty Builder for key type K.
func NewBuilder[K Key]() *Builder[K] {
	return &Builder[K]{entries: orderedmap.New()}
}

// Add declares the translations for key and returns the Builder for
// chaining. The translations map is copied. Validation errors are collected
// and reported by Build.
func (b *Builder[K]) Add(key K, translations map[string]string) *Builder[K] {
	if len(translations) == 0 {
		b.errs = append(b.errs, fmt.Errorf("%w: %s", ErrEmptyTranslations, key))
		return b
	}

	langs := make(map[string]string, len(translations))
	for lang, tmpl := range translations {
		langs[lang] = tmpl
	}

	if _, present := b.entries.Set(key, langs); present {
		b.errs = append(b.errs, fmt.Errorf("%w: %s", ErrDuplicateKey, key))
	}

	return b
}

// Build returns the assembled Set, or the collected definition errors.
func (b *Builder[K]) Build() (*Set[K], error) {
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}

	messages := make(map[K]map[string]string, b.entries.Len())
	keys := make([]K, 0, b.entries.Len())
	for pair := b.entries.Oldest(); pair != nil; pair = pair.Next() {
		key := pair.Key.(K)
		keys = append(keys, key)
		messages[key] = pair.Value.(map[string]string)
	}

	return &Set[K]{messages: messages, keys: keys}, nil
}

// MustBuild is like Build but panics on definition errors. It is intended
// for static definitions, typically in generated code, where an invalid
// definition is a programming error.
func (b *Builder[K]) MustBuild() *Set[K] {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}
