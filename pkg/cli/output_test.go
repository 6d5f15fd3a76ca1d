package cli

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

type sample struct {
	Name  string `json:"name" yaml:"name"`
	Value int    `json:"value" yaml:"value"`
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    OutputFormat
		wantErr bool
	}{
		{in: "", want: FormatText},
		{in: "text", want: FormatText},
		{in: "json", want: FormatJSON},
		{in: "yaml", want: FormatYAML},
		{in: "yml", want: FormatYAML},
		{in: "csv", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOutputFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseOutputFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseOutputFormat(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTextFormatter(t *testing.T) {
	formatter := &TextFormatter{}

	output, err := formatter.Format("test message")
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if string(output) != "test message\n" {
		t.Errorf("Format() = %q, want %q", string(output), "test message\n")
	}

	buf := &bytes.Buffer{}
	if err := formatter.FormatTo(buf, "test message"); err != nil {
		t.Fatalf("FormatTo() error = %v", err)
	}
	if buf.String() != "test message\n" {
		t.Errorf("FormatTo() = %q, want %q", buf.String(), "test message\n")
	}
}

func TestJSONFormatter(t *testing.T) {
	data := sample{Name: "test", Value: 42}

	for _, indent := range []bool{false, true} {
		t.Run(fmt.Sprintf("indent=%v", indent), func(t *testing.T) {
			formatter := &JSONFormatter{Indent: indent}
			output, err := formatter.Format(data)
			if err != nil {
				t.Fatalf("Format() error = %v", err)
			}

			var got sample
			if err := json.Unmarshal(output, &got); err != nil {
				t.Fatalf("Format() produced invalid JSON: %v", err)
			}
			if got != data {
				t.Errorf("round trip = %+v, want %+v", got, data)
			}
			if indent != strings.Contains(string(output), "\n  ") {
				t.Errorf("Format() indentation mismatch:\n%s", output)
			}
		})
	}
}

func TestYAMLFormatter(t *testing.T) {
	formatter := &YAMLFormatter{}
	output, err := formatter.Format(sample{Name: "test", Value: 42})
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	expected := "name: test\nvalue: 42\n"
	if string(output) != expected {
		t.Errorf("Format() = %q, want %q", string(output), expected)
	}

	var got sample
	if err := yaml.Unmarshal(output, &got); err != nil {
		t.Errorf("Format() produced invalid YAML: %v", err)
	}
}

func TestNewFormatter(t *testing.T) {
	tests := []struct {
		format  OutputFormat
		want    string
		wantErr bool
	}{
		{format: FormatText, want: "*cli.TextFormatter"},
		{format: "", want: "*cli.TextFormatter"},
		{format: FormatJSON, want: "*cli.JSONFormatter"},
		{format: FormatYAML, want: "*cli.YAMLFormatter"},
		{format: "csv", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			formatter, err := NewFormatter(tt.format)
			if tt.wantErr {
				if err == nil {
					t.Errorf("NewFormatter(%q) expected error", tt.format)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewFormatter(%q) error = %v", tt.format, err)
			}
			got := fmt.Sprintf("%T", formatter)
			if got != tt.want {
				t.Errorf("NewFormatter(%q) type = %v, want %v", tt.format, got, tt.want)
			}
		})
	}
}
