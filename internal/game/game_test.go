package game

import (
	"testing"

	"github.com/iburimskiy/cipher-visualization/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		WindowWidth:    800,
		WindowHeight:   600,
		Message:        "AB",
		Key1:           3,
		Mod1:           26,
		Key2:           5,
		Mod2:           26,
		Key3:           7,
		Mod3:           26,
		ShowTorus:      true,
		ShowPolynomial: true,
		SampleRate:     44100,
	}
}

func TestNewComputesInitialScene(t *testing.T) {
	g := New(testConfig())

	if got := g.Status(); got.CharacterCount != 2 {
		t.Fatalf("character count = %d, want 2", got.CharacterCount)
	}
	if len(g.torusPoints) != 2 || len(g.polyPoints) != 2 {
		t.Fatalf("sequences have %d/%d points, want 2/2", len(g.torusPoints), len(g.polyPoints))
	}
	if s := g.Status().ActiveSurfaces; len(s) != 2 || s[0] != "torus" || s[1] != "polynomial" {
		t.Fatalf("active surfaces = %v", s)
	}
}

func TestAppendRunesExtendsSequences(t *testing.T) {
	g := New(testConfig())

	g.appendRunes([]rune("XY"))

	if g.message != "ABXY" {
		t.Fatalf("message = %q, want ABXY", g.message)
	}
	if len(g.torusPoints) != 4 {
		t.Fatalf("torus sequence has %d points after typing, want 4", len(g.torusPoints))
	}
}

func TestAppendRunesSkipsControlRunes(t *testing.T) {
	g := New(testConfig())
	g.appendRunes([]rune{'\n', '\t'})
	if g.message != "AB" {
		t.Fatalf("control runes reached the message: %q", g.message)
	}
}

func TestBackspaceRemovesWholeRune(t *testing.T) {
	g := New(testConfig())
	g.appendRunes([]rune("é"))
	if g.Status().CharacterCount != 3 {
		t.Fatalf("character count = %d after typing é, want 3", g.Status().CharacterCount)
	}

	g.backspace()

	if g.message != "AB" {
		t.Fatalf("message = %q after backspace, want AB", g.message)
	}
	if len(g.torusPoints) != 2 {
		t.Fatalf("torus sequence has %d points after backspace, want 2", len(g.torusPoints))
	}
}

func TestBackspaceOnEmptyMessage(t *testing.T) {
	cfg := testConfig()
	cfg.Message = ""
	g := New(cfg)

	g.backspace()

	if g.message != "" || len(g.torusPoints) != 0 {
		t.Fatalf("backspace on empty message produced %q with %d points", g.message, len(g.torusPoints))
	}
}

func TestAdjustParamChangesSelected(t *testing.T) {
	g := New(testConfig())

	g.adjustParam(1)
	if g.key1 != 4 {
		t.Fatalf("key1 = %d after adjust, want 4", g.key1)
	}

	g.cycleParam()
	g.adjustParam(1)
	if g.mod1 != 27 {
		t.Fatalf("mod1 = %d after adjust, want 27", g.mod1)
	}
}

func TestAdjustParamFloorsModuli(t *testing.T) {
	cfg := testConfig()
	cfg.Mod1 = 1
	g := New(cfg)
	g.cycleParam()

	g.adjustParam(-1)
	if g.mod1 != 1 {
		t.Fatalf("mod1 = %d, want floor at 1", g.mod1)
	}

	g.adjustParam(1)
	if g.mod1 != 2 {
		t.Fatalf("mod1 = %d after increment, want 2", g.mod1)
	}
}

func TestCycleParamWraps(t *testing.T) {
	g := New(testConfig())
	for i := 0; i < len(g.params); i++ {
		g.cycleParam()
	}
	if g.selected != 0 {
		t.Fatalf("selected = %d after full cycle, want 0", g.selected)
	}
}

func TestToggleTorusClearsPoints(t *testing.T) {
	g := New(testConfig())

	g.toggleTorus()

	if g.torusPoints != nil {
		t.Fatalf("torus sequence kept %d points while hidden", len(g.torusPoints))
	}
	if s := g.Status().ActiveSurfaces; len(s) != 1 || s[0] != "polynomial" {
		t.Fatalf("active surfaces = %v, want [polynomial]", s)
	}

	g.toggleTorus()
	if len(g.torusPoints) != 2 {
		t.Fatalf("torus sequence has %d points after re-enable, want 2", len(g.torusPoints))
	}
}

func TestParamLineBracketsSelection(t *testing.T) {
	g := New(testConfig())
	want := "[key1=3] mod1=26 key2=5 mod2=26 key3=7 mod3=26"
	if got := g.paramLine(); got != want {
		t.Fatalf("paramLine() = %q, want %q", got, want)
	}

	g.cycleParam()
	want = "key1=3 [mod1=26] key2=5 mod2=26 key3=7 mod3=26"
	if got := g.paramLine(); got != want {
		t.Fatalf("paramLine() = %q, want %q", got, want)
	}
}

func TestStatusLineNoSurfaces(t *testing.T) {
	g := New(testConfig())
	g.toggleTorus()
	g.togglePolynomial()

	if got := g.statusLine(); got != "2 chars | surfaces: none" {
		t.Fatalf("statusLine() = %q", got)
	}
}

func TestTrimLastRune(t *testing.T) {
	cases := []struct{ in, want string }{
		{"", ""},
		{"a", ""},
		{"hé", "h"},
		{"日本", "日"},
	}
	for _, c := range cases {
		if got := trimLastRune(c.in); got != c.want {
			t.Fatalf("trimLastRune(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFlattenMessage(t *testing.T) {
	in := "line one\nline two\r\n   spaced\tout  "
	want := "line one line two spaced out"
	if got := flattenMessage(in); got != want {
		t.Fatalf("flattenMessage = %q, want %q", got, want)
	}
}

func TestClamp01(t *testing.T) {
	if clamp01(-0.5) != 0 || clamp01(1.5) != 1 || clamp01(0.25) != 0.25 {
		t.Fatal("clamp01 out of contract")
	}
}
