package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Format represents the output format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// OutputFormat is the current output format, set by the root command's --format flag.
var OutputFormat Format = FormatYAML

// PrettyOutput enables pretty-printing for JSON output.
var PrettyOutput bool

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatYAML, "":
		return FormatYAML, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s (expected yaml or json)", s)
	}
}

// Coords is a screen position.
type Coords struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
}

// Result is printed by every mouse command. Status follows the LDTP return
// convention: 1 on success, 0 when the action was declined or failed.
type Result struct {
	OK     bool    `yaml:"ok"               json:"ok"`
	Action string  `yaml:"action"           json:"action"`
	Status int     `yaml:"status"           json:"status"`
	Window string  `yaml:"window,omitempty" json:"window,omitempty"`
	Object string  `yaml:"object,omitempty" json:"object,omitempty"`
	Event  string  `yaml:"event,omitempty"  json:"event,omitempty"`
	At     *Coords `yaml:"at,omitempty"     json:"at,omitempty"`
	From   *Coords `yaml:"from,omitempty"   json:"from,omitempty"`
	To     *Coords `yaml:"to,omitempty"     json:"to,omitempty"`
	Error  string  `yaml:"error,omitempty"  json:"error,omitempty"`
}

// Succeeded fills in the success fields of r.
func (r Result) Succeeded() Result {
	r.OK = true
	r.Status = 1
	r.Error = ""
	return r
}

// Failed fills in the failure fields of r. A nil err means the action was
// declined rather than broken.
func (r Result) Failed(err error) Result {
	r.OK = false
	r.Status = 0
	if err != nil {
		r.Error = err.Error()
	}
	return r
}

// Fprint serializes v to w in the current output format.
func Fprint(w io.Writer, v interface{}) error {
	switch OutputFormat {
	case FormatJSON:
		return writeJSON(w, v, PrettyOutput)
	case FormatYAML:
		return writeYAML(w, v)
	default:
		return fmt.Errorf("unsupported output format: %s", OutputFormat)
	}
}

// YAML renders v as a YAML document, for callers that need the text.
func YAML(v interface{}) (string, error) {
	var buf bytes.Buffer
	if err := writeYAML(&buf, v); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func writeJSON(w io.Writer, v interface{}, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}
