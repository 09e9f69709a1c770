package gen

import (
	"strings"
	"text/template"
)

var funcs = template.FuncMap{
	"join": strings.Join,
}

// Template for the generated file

var fileTemplate = template.Must(template.New("file").Parse(`{{.Header}}
{{range .Expansions}}
// {{.Derive}} for {{.Item}}
{{.Code}}{{end}}`))

var constructorTemplate = template.Must(template.New("constructor").Parse(`{{.Head}} {
    {{.Vis}}fn new({{.Args}}) -> Self {
{{.Body}}
    }
}
`))

var displayTemplate = template.Must(template.New("display").Parse(`{{.Head}} {
    #[allow(unused_variables)]
    fn fmt(&self, formatter: &mut ::core::fmt::Formatter<'_>) -> ::core::fmt::Result {
{{.Body}}
    }
}
`))

var errorTemplate = template.Must(template.New("error").Parse(`{{.Head}} {}
`))

var fromTemplate = template.Must(template.New("from").Parse(`{{range $i, $c := .}}{{if $i}}
{{end}}{{$c.Head}} {
    fn from({{$c.Param}}: {{$c.From}}) -> Self {
{{$c.Body}}
    }
}
{{end}}`))

var methodTemplate = template.Must(template.New("method").Funcs(funcs).Parse(`{{.Head}} {{"{"}}{{if .Methods}}
{{join .Methods "\n\n"}}
{{end}}}
`))

var projectionTemplate = template.Must(template.New("projection").Parse(`{{range .Attrs}}{{.}}
{{end}}{{.Decl}}

{{.Head}} {
    {{.Vis}}fn {{.Method}}(self) -> {{.Return}} {
{{.Body}}
    }
}
`))
