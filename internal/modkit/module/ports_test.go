package module

import (
	"strings"
	"testing"

	"thaicurate/internal/platform/testkit"
)

// RunnerPort is a tiny test interface that Ports() payloads can implement
type RunnerPort interface {
	Run() int
}

type runner struct{ v int }

func (r runner) Run() int { return r.v }

type fakeModule struct {
	name  string
	ports any
}

func (m fakeModule) Name() string   { return m.name }
func (m fakeModule) Ports() PortSet { return m.ports }

func TestPortsOf(t *testing.T) {
	type Ports struct {
		Runner RunnerPort
		Other  int
	}
	type hidden struct {
		runner RunnerPort
	}

	tests := []struct {
		name  string
		ports any
		want  int
		ok    bool
	}{
		{"nil ports", nil, 0, false},
		{"direct", RunnerPort(runner{v: 42}), 42, true},
		{"struct bundle", Ports{Runner: runner{v: 7}}, 7, true},
		{"pointer bundle", &Ports{Runner: runner{v: 9}}, 9, true},
		{"nil pointer bundle", (*Ports)(nil), 0, false},
		{"unexported field ignored", hidden{runner: runner{v: 1}}, 0, false},
		{"scalar", 5, 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := PortsOf[RunnerPort](fakeModule{name: "curate", ports: tc.ports})
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if ok && got.Run() != tc.want {
				t.Fatalf("Run() = %d, want %d", got.Run(), tc.want)
			}
		})
	}
}

func TestMustPortsOf(t *testing.T) {
	got := MustPortsOf[RunnerPort](fakeModule{name: "ok", ports: RunnerPort(runner{v: 99})})
	if got.Run() != 99 {
		t.Fatalf("Run() = %d, want 99", got.Run())
	}

	defer func() {
		r := recover()
		msg, _ := r.(string)
		if !strings.Contains(msg, "curate") || !strings.Contains(msg, "requested port not found") {
			t.Fatalf("panic message should include module name and hint, got %v", r)
		}
	}()
	_ = MustPortsOf[RunnerPort](fakeModule{name: "curate"})
}

func TestMustPortsOf_Panics(t *testing.T) {
	testkit.MustPanic(t, func() {
		_ = MustPortsOf[RunnerPort](fakeModule{name: "x", ports: 1})
	})
}
