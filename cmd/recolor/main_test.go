package main

import (
	"bytes"
	"encoding/json"
	"reflect"
	"testing"

	"github.com/ironsheep/region-recolor/internal/recolor"
)

func envFrom(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig(nil, envFrom(nil))
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, recolor.DefaultConfig()) {
		t.Errorf("got %+v, want default config", cfg)
	}
}

func TestLoadConfig_Environment(t *testing.T) {
	cfg, err := loadConfig([]string{"shots/terminator_960.png"}, envFrom(map[string]string{
		"RECOLOR_PRESET":  "hyphen",
		"RECOLOR_REGIONS": "960",
	}))
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}

	if cfg.SourcePath != "shots/terminator_960.png" {
		t.Errorf("SourcePath = %q", cfg.SourcePath)
	}
	if cfg.Separator != "-" || cfg.Boost != 5.0 || cfg.PreBoost != 25.0 {
		t.Errorf("hyphen preset not applied: %+v", cfg)
	}
	want, _ := recolor.RegionSet("960")
	if !reflect.DeepEqual(cfg.Regions, want) {
		t.Errorf("Regions = %v, want %v", cfg.Regions, want)
	}
}

func TestLoadConfig_FullImage(t *testing.T) {
	cfg, err := loadConfig(nil, envFrom(map[string]string{"RECOLOR_REGIONS": "full"}))
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if len(cfg.Regions) != 0 {
		t.Errorf("Regions = %v, want none", cfg.Regions)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{"unknown preset", nil, map[string]string{"RECOLOR_PRESET": "dots"}},
		{"unknown regions", nil, map[string]string{"RECOLOR_REGIONS": "480"}},
		{"too many args", []string{"a.png", "b.png"}, nil},
		{"empty source", []string{""}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := loadConfig(tt.args, envFrom(tt.env)); err == nil {
				t.Error("loadConfig should fail")
			}
		})
	}
}

func sampleResult() *recolor.Result {
	return &recolor.Result{
		Source: "terminator.png",
		Width:  240,
		Height: 180,
		Outputs: []recolor.Output{
			{Variant: "red", Path: "terminator_red.png", Changed: 3500},
			{Variant: "black", Path: "terminator_black.png", Changed: 12},
		},
	}
}

func TestWriteResult_Text(t *testing.T) {
	for _, format := range []string{"", "text"} {
		var buf bytes.Buffer
		if err := writeResult(&buf, sampleResult(), format); err != nil {
			t.Fatalf("writeResult(%q) failed: %v", format, err)
		}
		want := "terminator_red.png\nterminator_black.png\n"
		if buf.String() != want {
			t.Errorf("writeResult(%q) = %q, want %q", format, buf.String(), want)
		}
	}
}

func TestWriteResult_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := writeResult(&buf, sampleResult(), "json"); err != nil {
		t.Fatalf("writeResult failed: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if decoded["source"] != "terminator.png" || decoded["width"] != 240.0 || decoded["height"] != 180.0 {
		t.Errorf("unexpected header fields: %v", decoded)
	}
	outputs, ok := decoded["outputs"].([]interface{})
	if !ok || len(outputs) != 2 {
		t.Fatalf("outputs: got %v", decoded["outputs"])
	}
	first := outputs[0].(map[string]interface{})
	if first["variant"] != "red" || first["path"] != "terminator_red.png" || first["changed_pixels"] != 3500.0 {
		t.Errorf("first output: got %v", first)
	}
}

func TestWriteResult_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := writeResult(&buf, sampleResult(), "yaml"); err == nil {
		t.Error("writeResult should fail for unknown format")
	}
}
