package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.App.Name != "youban" {
		t.Errorf("Expected app name youban, got %s", cfg.App.Name)
	}
	if cfg.App.Port != "7021" {
		t.Errorf("Expected default port 7021, got %s", cfg.App.Port)
	}
	if cfg.Optimizer.PopulationSize != 50 {
		t.Errorf("Expected default population size 50, got %d", cfg.Optimizer.PopulationSize)
	}
	if cfg.Optimizer.AllowSampleFallback {
		t.Error("Sample fallback should default to off")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "8080")
	t.Setenv("APP_LOG_LEVEL", "debug")
	t.Setenv("OPTIMIZER_MAX_GENERATIONS", "200")
	t.Setenv("OPTIMIZER_ALLOW_SAMPLE_FALLBACK", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.App.Port != "8080" {
		t.Errorf("Expected port 8080, got %s", cfg.App.Port)
	}
	if cfg.App.LogLevel != "debug" {
		t.Errorf("Expected log level debug, got %s", cfg.App.LogLevel)
	}
	if cfg.Optimizer.MaxGenerations != 200 {
		t.Errorf("Expected 200 generations, got %d", cfg.Optimizer.MaxGenerations)
	}
	if !cfg.Optimizer.AllowSampleFallback {
		t.Error("Expected sample fallback enabled")
	}
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("OPTIMIZER_MAX_GENERATIONS", "not_a_number")

	if _, err := Load(); err == nil {
		t.Error("Invalid numeric env value should fail to parse")
	}
}
