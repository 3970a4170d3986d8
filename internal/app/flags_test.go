package app

import (
	"flag"
	"testing"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("ca", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-sim", "seats-visible", "-layout", "hall.txt", "-rps", "9", "-hud", "0"}); err != nil {
		t.Fatal(err)
	}
	if cfg.Sim != "seats-visible" || cfg.RPS != 9 || cfg.HUDWidth != 0 {
		t.Fatalf("flags not applied: %+v", cfg)
	}
	if cfg.Scale != NewConfig().Scale {
		t.Fatalf("unset flag changed default scale to %d", cfg.Scale)
	}
	if got := cfg.SimOptions()["layout"]; got != "hall.txt" {
		t.Fatalf("SimOptions layout = %q", got)
	}
}

func TestSimOptionsWithoutLayout(t *testing.T) {
	if opts := NewConfig().SimOptions(); len(opts) != 0 {
		t.Fatalf("expected no options, got %v", opts)
	}
}
