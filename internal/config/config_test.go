package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	dataPath := filepath.Join(dir, "runtime-data.json")
	if err := os.WriteFile(dataPath, []byte("{}"), 0o644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	cfgPath := filepath.Join(dir, "config.yaml")
	yaml := "server:\n  port: \"9090\"\ndataset:\n  path: runtime-data.json\nexport:\n  width: 800\n  height: 400\n"
	if err := os.WriteFile(cfgPath, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	c, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Server.Port != "9090" {
		t.Errorf("port = %q, want 9090", c.Server.Port)
	}
	// Relative dataset path resolves against the config directory.
	if c.Dataset.Path != dataPath {
		t.Errorf("dataset path = %q, want %q", c.Dataset.Path, dataPath)
	}
	if c.Export.Width != 800 || c.Export.Height != 400 {
		t.Errorf("export = %dx%d, want 800x400", c.Export.Width, c.Export.Height)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("server:\n  port: \"9999\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	c, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	def := Default()
	if c.Server.Port != "9999" {
		t.Errorf("port = %q, want 9999", c.Server.Port)
	}
	if c.Export != def.Export {
		t.Errorf("export = %+v, want defaults %+v", c.Export, def.Export)
	}
}

func TestValidate(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	c.Export.Width = 0
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for zero export width")
	}
	var nilCfg *Config
	if err := nilCfg.Validate(); err == nil {
		t.Fatal("expected error for nil config")
	}
}
