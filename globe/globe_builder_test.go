package globe

import (
	"testing"

	"github.com/jthornhill/globeview/shading"
)

func buildConfig(options ...GlobeOption) config {
	cfg := defaultConfig()
	for _, opt := range options {
		opt(&cfg)
	}
	return cfg
}

func TestDefaultConfigValid(t *testing.T) {
	cfg := defaultConfig()
	if err := cfg.validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.variant != shading.VariantPlain {
		t.Fatalf("default variant = %v, want plain", cfg.variant)
	}
}

func TestValidateRejectsBadRadius(t *testing.T) {
	cfg := buildConfig(WithRadius(0))
	if err := cfg.validate(); err == nil {
		t.Fatal("expected error for zero radius")
	}
	cfg = buildConfig(WithRadius(-10))
	if err := cfg.validate(); err == nil {
		t.Fatal("expected error for negative radius")
	}
}

func TestValidateRejectsBadDetail(t *testing.T) {
	cfg := buildConfig(WithDetail(1))
	if err := cfg.validate(); err == nil {
		t.Fatal("expected error for detail below 2")
	}
}

func TestValidateRejectsBadPointSize(t *testing.T) {
	cfg := buildConfig(WithPointSize(0))
	if err := cfg.validate(); err == nil {
		t.Fatal("expected error for zero point size")
	}
}

func TestValidateRejectsBadWindowSize(t *testing.T) {
	cfg := buildConfig(WithWindowSize(0, 720))
	if err := cfg.validate(); err == nil {
		t.Fatal("expected error for zero width")
	}
	cfg = buildConfig(WithWindowSize(1280, -1))
	if err := cfg.validate(); err == nil {
		t.Fatal("expected error for negative height")
	}
}

func TestOptionsApply(t *testing.T) {
	cfg := buildConfig(
		WithTitle("test"),
		WithVariant(shading.VariantGolden),
		WithRotationSpeed(0.002),
		WithProfiling(),
	)
	if cfg.title != "test" {
		t.Fatalf("title = %q", cfg.title)
	}
	if cfg.variant != shading.VariantGolden {
		t.Fatalf("variant = %v", cfg.variant)
	}
	if cfg.rotationSpeed != 0.002 {
		t.Fatalf("rotation speed = %v", cfg.rotationSpeed)
	}
	if !cfg.profile {
		t.Fatal("profiling not enabled")
	}
}
