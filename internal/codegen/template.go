package codegen

const fileTemplate = `// Code generated by sl10n-gen from {{ .Source }}. DO NOT EDIT.

package {{ .Package }}

import (
	"strconv"
	"sync"

	"github.com/SergeiMinaev/sl10n"
)

// {{ .TypeName }} identifies one localized message.
type {{ .TypeName }} int

const (
{{- range $i, $m := .Messages }}
	{{ $.TypeName }}{{ $m.Const }}{{ if eq $i 0 }} {{ $.TypeName }} = iota{{ end }}
{{- end }}
)

// String returns the declared name of the message key.
func (k {{ .TypeName }}) String() string {
	switch k {
{{- range .Messages }}
	case {{ $.TypeName }}{{ .Const }}:
		return {{ printf "%q" .Name }}
{{- end }}
	}
	return "{{ .TypeName }}(" + strconv.Itoa(int(k)) + ")"
}

// NewMessages builds the message set from scratch. Most callers want the
// cached Messages accessor instead.
func NewMessages() *sl10n.Set[{{ .TypeName }}] {
	return sl10n.NewBuilder[{{ .TypeName }}]().
{{- range .Messages }}
		Add({{ $.TypeName }}{{ .Const }}, map[string]string{
{{- range .Languages }}
			{{ printf "%q" .Code }}: {{ printf "%q" .Template }},
{{- end }}
		}).
{{- end }}
		MustBuild()
}

var messages = sync.OnceValue(NewMessages)

// Messages returns the message set for this package, built on first use.
func Messages() *sl10n.Set[{{ .TypeName }}] {
	return messages()
}
`
