package adapter

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/turtle/internal/model"
)

// Format names a program serialization.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatHTML Format = "html"
)

// Formats lists every export format.
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatYAML, FormatHTML}
}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}

	if f == "yml" {
		return FormatYAML, nil
	}

	return "", fmt.Errorf("unsupported format %q", s)
}

// FormatForPath picks a format from a file extension, defaulting to text.
func FormatForPath(path m.Path) Format {
	switch path.Ext() {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".html", ".htm":
		return FormatHTML
	default:
		return FormatText
	}
}

// Exporter writes a program document in one format.
type Exporter interface {
	Export(w io.Writer, doc m.ProgramDocument) error
	Extension() string
	FormatName() string
}

// NewExporter returns the exporter for f.
func NewExporter(f Format) (Exporter, error) {
	switch f {
	case FormatText:
		return textExporter{}, nil
	case FormatJSON:
		return jsonExporter{}, nil
	case FormatYAML:
		return yamlExporter{}, nil
	case FormatHTML:
		return htmlExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format %q", f)
	}
}

// DecodeDocument reads a program document written by the JSON or YAML exporter.
func DecodeDocument(f Format, data []byte) (m.ProgramDocument, error) {
	var doc m.ProgramDocument

	switch f {
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return m.ProgramDocument{}, fmt.Errorf("failed to decode json program: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return m.ProgramDocument{}, fmt.Errorf("failed to decode yaml program: %w", err)
		}
	default:
		return m.ProgramDocument{}, fmt.Errorf("format %q cannot be decoded", f)
	}

	return doc, nil
}

type textExporter struct{}

func (textExporter) Export(w io.Writer, doc m.ProgramDocument) error {
	_, err := io.WriteString(w, doc.Text)
	return err
}

func (textExporter) Extension() string  { return ".txt" }
func (textExporter) FormatName() string { return "Text Format" }

type jsonExporter struct{}

func (jsonExporter) Export(w io.Writer, doc m.ProgramDocument) error {
	if doc.Commands == nil {
		doc.Commands = []m.CommandNode{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(doc)
}

func (jsonExporter) Extension() string  { return ".json" }
func (jsonExporter) FormatName() string { return "JSON Format" }

type yamlExporter struct{}

func (yamlExporter) Export(w io.Writer, doc m.ProgramDocument) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(doc); err != nil {
		return err
	}

	return enc.Close()
}

func (yamlExporter) Extension() string  { return ".yaml" }
func (yamlExporter) FormatName() string { return "YAML Format" }

type htmlExporter struct{}

var htmlProgram = template.Must(template.New("program").Funcs(template.FuncMap{
	"label": nodeLabel,
}).Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>{{.Name}}</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 20px; }
        h1 { color: #333; }
        .command { font-weight: bold; color: #2196F3; }
        ul { list-style-type: none; }
        .indent { margin-left: 30px; }
    </style>
</head>
<body>
    <h1>Program: {{.Name}}</h1>
    <ul>
{{- range .Commands}}{{template "node" .}}{{end}}
    </ul>
</body>
</html>
{{define "node"}}
<li><span class="command">{{.Type}}</span> {{label .}}
{{- if .Commands}}
<ul class="indent">{{range .Commands}}{{template "node" .}}{{end}}
</ul>
{{- end}}</li>{{end}}`))

func (htmlExporter) Export(w io.Writer, doc m.ProgramDocument) error {
	return htmlProgram.Execute(w, doc)
}

func (htmlExporter) Extension() string  { return ".html" }
func (htmlExporter) FormatName() string { return "HTML Format" }

func nodeLabel(node m.CommandNode) string {
	switch node.Type {
	case m.CommandMove:
		if node.Steps != nil {
			return fmt.Sprintf("%d", *node.Steps)
		}
	case m.CommandTurn:
		return string(node.Direction)
	case m.CommandRepeat:
		if node.Times != nil {
			return fmt.Sprintf("%d times", *node.Times)
		}
	case m.CommandRepeatUntil:
		return string(node.Condition)
	}

	return ""
}
