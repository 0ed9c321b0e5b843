// Command genbounds regenerates the upper bound table used to skip the
// similarity metric. It is run through go generate, never at runtime:
//
//	go run ./cmd/genbounds -out internal/core/bounds/upper_bounds_gen.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"strconv"
	"text/template"

	"github.com/baditaflorin/go_fuzzy_compare/internal/core/bounds"
	"github.com/baditaflorin/go_fuzzy_compare/internal/core/domain"
	"github.com/baditaflorin/go_fuzzy_compare/internal/core/similarity"
)

var fileTemplate = template.Must(template.New("bounds").Funcs(template.FuncMap{
	"float": formatFloat,
}).Parse(`// Code generated by genbounds -left-max {{.LeftMax}} -right-max {{.RightMax}}; DO NOT EDIT.

package {{.Package}}

import "github.com/baditaflorin/go_fuzzy_compare/internal/core/domain"

var defaultEntries = []domain.Bound{
{{- range .Entries}}
	{SizeRatio: {{float .SizeRatio}}, MaxSimilarity: {{float .MaxSimilarity}}},
{{- end}}
}
`))

type fileData struct {
	Package  string
	LeftMax  int
	RightMax int
	Entries  []domain.Bound
}

func main() {
	leftMax := flag.Int("left-max", bounds.DefaultLeftMax, "exclusive upper limit of the shorter sample length")
	rightMax := flag.Int("right-max", bounds.DefaultRightMax, "exclusive upper limit of the length difference plus one")
	out := flag.String("out", "upper_bounds_gen.go", "output file (- for stdout)")
	pkg := flag.String("package", "bounds", "package name of the generated file")
	flag.Parse()

	if err := run(*leftMax, *rightMax, *out, *pkg); err != nil {
		fmt.Fprintln(os.Stderr, "genbounds:", err)
		os.Exit(1)
	}
}

func run(leftMax, rightMax int, out, pkg string) error {
	src, err := render(leftMax, rightMax, pkg)
	if err != nil {
		return err
	}
	if out == "-" {
		_, err = os.Stdout.Write(src)
		return err
	}
	return os.WriteFile(out, src, 0o644)
}

// render generates, validates and formats the table source.
func render(leftMax, rightMax int, pkg string) ([]byte, error) {
	entries, err := bounds.Generate(similarity.NewMetric(similarity.QuickRatioMode), leftMax, rightMax)
	if err != nil {
		return nil, err
	}
	if err := bounds.Validate(entries); err != nil {
		return nil, fmt.Errorf("generated table: %w", err)
	}

	var buf bytes.Buffer
	err = fileTemplate.Execute(&buf, fileData{
		Package:  pkg,
		LeftMax:  leftMax,
		RightMax: rightMax,
		Entries:  entries,
	})
	if err != nil {
		return nil, fmt.Errorf("render template: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}

// formatFloat prints the shortest representation that parses back to v.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
