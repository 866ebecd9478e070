// sl10n-gen generates a typed message key enum and its message set from a
// TOML definition file. Each top-level table in the definition is one
// message key; its entries map language codes to template strings.
//
// Usage:
//
//	sl10n-gen -i messages.toml -o messages.go -p mypkg [-t Msg]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/SergeiMinaev/sl10n/internal/codegen"
)

func main() {
	opts := codegen.Options{}
	flag.StringVar(&opts.Input, "i", "", "TOML message definition file")
	flag.StringVar(&opts.Output, "o", "", "Go file to generate")
	flag.StringVar(&opts.Package, "p", "", "package name for the generated file")
	flag.StringVar(&opts.TypeName, "t", "Msg", "name of the generated key type")
	flag.Parse()

	if opts.Input == "" || opts.Output == "" || opts.Package == "" {
		fmt.Fprintln(os.Stderr, "sl10n-gen: -i, -o and -p are required")
		flag.Usage()
		os.Exit(2)
	}

	if err := codegen.Generate(opts); err != nil {
		fmt.Fprintln(os.Stderr, "sl10n-gen:", err)
		os.Exit(1)
	}
}
