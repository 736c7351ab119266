// Package templates holds the panel's HTML, embedded into the binary.
package templates

import (
	"embed"
	"fmt"
	"html/template"
	"strings"
)

//go:embed *.html
var files embed.FS

// Load parses every page with the shared helpers.
func Load() (*template.Template, error) {
	return template.New("").Funcs(Funcs()).ParseFS(files, "*.html")
}

func Funcs() template.FuncMap {
	return template.FuncMap{
		"field":   Field,
		"display": Display,
		"add":     func(a, b int) int { return a + b },
		"sub":     func(a, b int) int { return a - b },
	}
}

// Field walks a dotted path ("user.firstName") through decoded JSON.
func Field(row map[string]any, path string) any {
	var cur any = row
	for _, key := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur = m[key]
	}
	return cur
}

// Display renders a decoded JSON value for a table cell.
func Display(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case bool:
		if x {
			return "✔"
		}
		return "✘"
	case float64:
		if x == float64(int64(x)) {
			return fmt.Sprintf("%d", int64(x))
		}
		return fmt.Sprintf("%g", x)
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}
