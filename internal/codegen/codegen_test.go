package codegen

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefinition(t *testing.T) {
	msgs, err := parseDefinition(filepath.Join("testdata", "messages.toml"))
	require.NoError(t, err)
	require.Len(t, msgs, 3)

	t.Run("keeps file order", func(t *testing.T) {
		assert.Equal(t, "Greeting", msgs[0].Name)
		assert.Equal(t, "Farewell", msgs[1].Name)
		assert.Equal(t, "changes_saved", msgs[2].Name)
	})

	t.Run("converts names to Go identifiers", func(t *testing.T) {
		assert.Equal(t, "Greeting", msgs[0].Const)
		assert.Equal(t, "ChangesSaved", msgs[2].Const)
	})

	t.Run("collects translations in file order", func(t *testing.T) {
		require.Len(t, msgs[0].Languages, 3)
		assert.Equal(t, "en", msgs[0].Languages[0].Code)
		assert.Equal(t, "Hello!", msgs[0].Languages[0].Template)
		assert.Equal(t, "ru", msgs[0].Languages[1].Code)
		assert.Equal(t, "es", msgs[0].Languages[2].Code)

		require.Len(t, msgs[1].Languages, 3)
		assert.Equal(t, "Goodbye, {name}.", msgs[1].Languages[0].Template)

		require.Len(t, msgs[2].Languages, 2)
	})
}

func TestParseDefinitionErrors(t *testing.T) {
	t.Run("colliding identifiers", func(t *testing.T) {
		_, err := parseDefinition(filepath.Join("testdata", "collide.toml"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNameCollision)
	})

	t.Run("message without translations", func(t *testing.T) {
		_, err := parseDefinition(filepath.Join("testdata", "no_translations.toml"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingTranslations)
		assert.Contains(t, err.Error(), "Empty")
	})

	t.Run("non-string template", func(t *testing.T) {
		_, err := parseDefinition(filepath.Join("testdata", "bad_value.toml"))
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := parseDefinition(filepath.Join("testdata", "nope.toml"))
		assert.Error(t, err)
	})
}

func TestGenerate(t *testing.T) {
	output := filepath.Join(t.TempDir(), "messages.go")
	err := Generate(Options{
		Input:   filepath.Join("testdata", "messages.toml"),
		Output:  output,
		Package: "demo",
	})
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	src := string(data)

	t.Run("is valid Go source", func(t *testing.T) {
		_, err := parser.ParseFile(token.NewFileSet(), "messages.go", data, 0)
		assert.NoError(t, err)
	})

	t.Run("declares the key type and constants", func(t *testing.T) {
		assert.Contains(t, src, "package demo")
		assert.Contains(t, src, "type Msg int")
		assert.Contains(t, src, "MsgGreeting Msg = iota")
		assert.Contains(t, src, "MsgFarewell")
		assert.Contains(t, src, "MsgChangesSaved")
	})

	t.Run("String returns declared names", func(t *testing.T) {
		assert.Contains(t, src, `return "Greeting"`)
		assert.Contains(t, src, `return "changes_saved"`)
	})

	t.Run("embeds the templates", func(t *testing.T) {
		assert.Contains(t, src, `"es": "¡Hola!"`)
		assert.Contains(t, src, `"en": "Goodbye, {name}."`)
	})

	t.Run("exposes a cached accessor", func(t *testing.T) {
		assert.Contains(t, src, "sync.OnceValue(NewMessages)")
		assert.Contains(t, src, "func Messages() *sl10n.Set[Msg]")
	})
}

func TestGenerateCustomTypeName(t *testing.T) {
	output := filepath.Join(t.TempDir(), "messages.go")
	err := Generate(Options{
		Input:    filepath.Join("testdata", "messages.toml"),
		Output:   output,
		Package:  "demo",
		TypeName: "MessageKey",
	})
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	src := string(data)

	assert.Contains(t, src, "type MessageKey int")
	assert.Contains(t, src, "MessageKeyGreeting MessageKey = iota")
	assert.NotContains(t, src, "type Msg int")
}

func TestGenerateErrors(t *testing.T) {
	output := filepath.Join(t.TempDir(), "messages.go")
	err := Generate(Options{
		Input:   filepath.Join("testdata", "collide.toml"),
		Output:  output,
		Package: "demo",
	})
	require.Error(t, err)

	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr), "no output should be written on error")
}
