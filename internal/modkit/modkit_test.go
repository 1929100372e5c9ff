package modkit

import (
	"bytes"
	"strings"
	"testing"

	"thaicurate/internal/platform/config"

	"github.com/rs/zerolog"
)

type stub struct{ ports any }

func (s *stub) Ports() any   { return s.ports }
func (s *stub) Name() string { return "stub" }

var _ Module = (*stub)(nil)

func TestBuilder_TypeSignatureAndUse(t *testing.T) {
	t.Parallel()

	var b Builder = func(_ Deps, _ ...Option) Module {
		return &stub{ports: "ok"}
	}
	m := b(Deps{})
	if m == nil {
		t.Fatal("builder returned nil module")
	}
	if p := m.Ports(); p != "ok" {
		t.Fatalf("unexpected Ports value from built module: got=%v want=ok", p)
	}
}

func TestBuild_Defaults(t *testing.T) {
	t.Parallel()

	b := Build()
	if b.Name != "" || b.Ports != nil {
		t.Fatalf("unexpected defaults: %+v", b)
	}
}

func TestBuild_LaterOptionsWin(t *testing.T) {
	t.Parallel()

	type ports struct{ X int }
	b := Build(WithName("a"), WithPorts(ports{X: 1}), WithName("curate"), WithPorts(ports{X: 7}))
	if b.Name != "curate" {
		t.Fatalf("Name = %q, want curate", b.Name)
	}
	if got, ok := b.Ports.(ports); !ok || got.X != 7 {
		t.Fatalf("Ports = %#v", b.Ports)
	}
}

func TestDeps_Named(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	d := Deps{Log: zerolog.New(&buf), Cfg: config.New()}
	l := d.Named("curate")
	l.Info().Msg("hello")
	if !strings.Contains(buf.String(), `"component":"curate"`) {
		t.Fatalf("expected component field, got %s", buf.String())
	}
}
