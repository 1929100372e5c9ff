package raw

import "testing"

func TestConfGet(t *testing.T) {
	t.Setenv("APP_NAME", " thaicurate ")
	t.Setenv("LOG_FORMAT", " json ")

	root := New()
	lg := root.Prefix("LOG_")

	tests := []struct {
		name string
		conf Conf
		key  string
		def  string
		want string
	}{
		{name: "root hit", conf: root, key: "APP_NAME", def: "x", want: "thaicurate"},
		{name: "prefixed hit", conf: lg, key: "FORMAT", def: "x", want: "json"},
		{name: "missing returns default", conf: lg, key: "MISSING", def: "defv", want: "defv"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.conf.Get(tt.key, tt.def); got != tt.want {
				t.Fatalf("Get(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestConfGetBool(t *testing.T) {
	c := New().Prefix("B_")
	t.Setenv("B_T1", "true")
	t.Setenv("B_T2", "1")
	t.Setenv("B_T3", "YES")
	t.Setenv("B_T4", " on ")
	t.Setenv("B_F1", "false")
	t.Setenv("B_F2", "nah")

	tests := []struct {
		key  string
		def  bool
		want bool
	}{
		{"T1", false, true},
		{"T2", false, true},
		{"T3", false, true},
		{"T4", false, true},
		{"F1", true, false},
		{"F2", true, false},
		{"MISSING", true, true},
	}
	for _, tt := range tests {
		if got := c.GetBool(tt.key, tt.def); got != tt.want {
			t.Fatalf("GetBool(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestConfGetInt(t *testing.T) {
	c := New().Prefix("N_")
	t.Setenv("N_OK", "42")
	t.Setenv("N_WS", "  7  ")
	t.Setenv("N_NONNUM", "12x")
	t.Setenv("N_NEG", "-5")

	tests := []struct {
		key  string
		def  int
		want int
	}{
		{"OK", 0, 42},
		{"WS", 1, 7},
		{"NONNUM", 9, 9},
		{"NEG", 3, 3},
		{"MISSING", 11, 11},
	}
	for _, tt := range tests {
		if got := c.GetInt(tt.key, tt.def); got != tt.want {
			t.Fatalf("GetInt(%q) = %d, want %d", tt.key, got, tt.want)
		}
	}
}

func TestPrefixComposition(t *testing.T) {
	t.Setenv("CORE_CURATE_WORKERS", "4")
	c := New().Prefix("CORE_").Prefix("CURATE_")
	if got := c.GetInt("WORKERS", 0); got != 4 {
		t.Fatalf("nested prefix GetInt = %d, want 4", got)
	}
}
