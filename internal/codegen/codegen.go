// Package codegen turns TOML message definitions into Go source declaring a
// typed message key enum and its sl10n message set.
package codegen

import (
	"errors"
	"fmt"
	"go/format"
	"log"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/BurntSushi/toml"
	"github.com/iancoleman/strcase"
)

var (
	ErrNoMessages          = errors.New("definition declares no messages")
	ErrMissingTranslations = errors.New("message has no translations")
	ErrNameCollision       = errors.New("message names collide after Go identifier conversion")
)

// Options configure a single generator run.
type Options struct {
	Input    string // TOML definition file
	Output   string // generated Go file
	Package  string // package name of the generated file
	TypeName string // key type name, "Msg" by default
}

type message struct {
	Name      string // declared name, as written in the definition
	Const     string // Go constant suffix, e.g. "ChangesSaved"
	Languages []langEntry
}

type langEntry struct {
	Code     string
	Template string
}

type templateData struct {
	Source   string
	Package  string
	TypeName string
	Messages []message
}

// Generate reads the definition in opts.Input and writes the generated Go
// source to opts.Output.
func Generate(opts Options) error {
	if opts.TypeName == "" {
		opts.TypeName = "Msg"
	}

	msgs, err := parseDefinition(opts.Input)
	if err != nil {
		return err
	}

	tmpl := template.Must(template.New("messages").Parse(fileTemplate))
	var buf strings.Builder
	err = tmpl.Execute(&buf, templateData{
		Source:   filepath.Base(opts.Input),
		Package:  opts.Package,
		TypeName: opts.TypeName,
		Messages: msgs,
	})
	if err != nil {
		return fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source([]byte(buf.String()))
	if err != nil {
		log.Printf("formatting generated code: %v", err)
		formatted = []byte(buf.String())
	}

	if dir := filepath.Dir(opts.Output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	return os.WriteFile(opts.Output, formatted, 0644)
}

// parseDefinition reads a TOML definition and returns its messages in
// declaration order. Each top-level table is one message; its entries map
// language codes to template strings. TOML itself rejects duplicate tables,
// so duplicate message names fail here at definition time.
func parseDefinition(path string) ([]message, error) {
	var raw map[string]map[string]string
	md, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	var msgs []message
	index := make(map[string]int, len(raw))
	constNames := make(map[string]string, len(raw))

	for _, key := range md.Keys() {
		switch len(key) {
		case 1:
			name := key[0]
			constName := strcase.ToCamel(name)
			if prev, ok := constNames[constName]; ok {
				return nil, fmt.Errorf("%w: %q and %q", ErrNameCollision, prev, name)
			}
			constNames[constName] = name
			index[name] = len(msgs)
			msgs = append(msgs, message{Name: name, Const: constName})
		case 2:
			i, ok := index[key[0]]
			if !ok {
				continue
			}
			msgs[i].Languages = append(msgs[i].Languages, langEntry{
				Code:     key[1],
				Template: raw[key[0]][key[1]],
			})
		}
	}

	if len(msgs) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoMessages, path)
	}
	for _, m := range msgs {
		if len(m.Languages) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrMissingTranslations, m.Name)
		}
	}

	return msgs, nil
}
