package api

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestOutputToJSON(t *testing.T) {
	var buf bytes.Buffer
	data := map[string]any{"total_count": 7, "failed": []string{"alaska"}}

	if err := OutputTo(&buf, OutputFormatJSON, data); err != nil {
		t.Fatalf("OutputTo() error = %v", err)
	}
	var round map[string]any
	if err := json.Unmarshal(buf.Bytes(), &round); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if round["total_count"].(float64) != 7 {
		t.Errorf("total_count = %v, want 7", round["total_count"])
	}
}

func TestOutputToYAML(t *testing.T) {
	var buf bytes.Buffer
	data := map[string]int{"fetched": 49, "failed": 2}

	if err := OutputTo(&buf, OutputFormatYAML, data); err != nil {
		t.Fatalf("OutputTo() error = %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "fetched: 49") || !strings.Contains(out, "failed: 2") {
		t.Errorf("unexpected YAML output:\n%s", out)
	}
}

func TestOutputToUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := OutputTo(&buf, OutputFormat("toml"), map[string]int{"fetched": 1})
	if err == nil {
		t.Fatal("OutputTo() error = nil, want unknown format error")
	}
	if !strings.Contains(err.Error(), "toml") {
		t.Errorf("error %q does not name the format", err)
	}
	if buf.Len() != 0 {
		t.Errorf("wrote %q before failing, want no output", buf.String())
	}
}

func TestSetOutputFormat(t *testing.T) {
	defer SetOutputFormat("yaml")

	SetOutputFormat("json")
	if GetOutputFormat() != OutputFormatJSON {
		t.Errorf("GetOutputFormat() = %v, want json", GetOutputFormat())
	}
	SetOutputFormat("bogus")
	if GetOutputFormat() != DefaultOutput {
		t.Errorf("GetOutputFormat() = %v, want default for bogus input", GetOutputFormat())
	}
}
