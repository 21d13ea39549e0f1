package drive

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-drive/internal/core"
	"github.com/vovakirdan/neon-drive/internal/registry"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   60,
		Seed:       4242,
		PlayerName: "Ana",
		Mode:       "contest",
	}
}

func TestVariantsRegistered(t *testing.T) {
	for _, id := range []string{"drive", "drive_classic"} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, want %q", g.ID(), id)
		}
	}
}

func TestGameResetStartsRun(t *testing.T) {
	g := NewWithClock(VariantNeon, core.NewManualClock(epoch))
	g.Reset(testRuntime())

	st := g.State()
	if st.Phase != "PLAY" || st.Stage != 0 || st.GameOver {
		t.Errorf("state after Reset = %+v", st)
	}
	if g.Run().Player() != "Ana" {
		t.Errorf("player = %q", g.Run().Player())
	}
}

func TestGamePresetFromRuntime(t *testing.T) {
	tests := []struct {
		mode string
		easy bool
		want string
	}{
		{"contest", false, "contest"},
		{"practice", false, "practice"},
		{"contest", true, "easy"},
		{"bogus", false, "contest"},
	}
	for _, tt := range tests {
		rc := testRuntime()
		rc.Mode, rc.Easy = tt.mode, tt.easy
		if got := string(presetFor(rc)); got != tt.want {
			t.Errorf("presetFor(%q, %v) = %q, want %q", tt.mode, tt.easy, got, tt.want)
		}
	}
}

func TestGameStepMapsControls(t *testing.T) {
	clock := core.NewManualClock(epoch)
	g := NewWithClock(VariantNeon, clock)
	g.Reset(testRuntime())

	gear := core.NewInputFrame()
	gear.Set(core.ActionGearToggle)
	res := g.Step(gear)

	found := false
	for _, e := range res.Events {
		if e.Tag == string(EventGear) {
			found = true
		}
	}
	if !found {
		t.Errorf("events = %+v, want gear", res.Events)
	}
	if g.Run().State().Vehicle.Gear != GearReverse {
		t.Error("gear toggle not applied")
	}

	in := core.NewInputFrame()
	in.Set(core.ActionGas)
	in.Set(core.ActionLeft)
	clock.AdvanceSeconds(frameDt)
	g.Step(in)

	v := g.Run().State().Vehicle
	if v.Speed >= 0 {
		t.Errorf("reverse gas gave speed %v, want negative", v.Speed)
	}
	if v.Controls.SteerTarget != -1 {
		t.Errorf("SteerTarget = %v, want -1", v.Controls.SteerTarget)
	}
}

func TestGameFinishedControls(t *testing.T) {
	clock := core.NewManualClock(epoch)
	g := NewWithClock(VariantClassic, clock)
	g.Reset(testRuntime())

	rs := g.Run().State()
	rs.loadStage(2)
	parkInTarget(rs)
	rs.Stage.Parking.Reversed = true
	for i := 0; i < 300 && !g.State().GameOver; i++ {
		clock.AdvanceSeconds(frameDt)
		g.Step(core.NewInputFrame())
	}
	if !g.State().GameOver {
		t.Fatal("run did not finish")
	}
	if _, ok := g.Summary(); !ok {
		t.Fatal("no summary after finish")
	}

	back := core.NewInputFrame()
	back.Set(core.ActionBack)
	g.Step(back)
	if g.State().Phase != "FINISHED" {
		t.Fatalf("phase = %q after back, want FINISHED", g.State().Phase)
	}

	confirm := core.NewInputFrame()
	confirm.Set(core.ActionConfirm)
	g.Step(confirm)
	if g.State().Phase != "PLAY" {
		t.Errorf("phase = %q after confirm, want PLAY", g.State().Phase)
	}
}

func TestGameMenuConfirmStarts(t *testing.T) {
	clock := core.NewManualClock(epoch)
	g := NewWithClock(VariantNeon, clock)
	g.Reset(testRuntime())
	if err := g.Run().Quit(); err != nil {
		t.Fatalf("Quit: %v", err)
	}
	if g.State().Phase != "MENU" {
		t.Fatalf("phase = %q after Quit, want MENU", g.State().Phase)
	}

	confirm := core.NewInputFrame()
	confirm.Set(core.ActionConfirm)
	g.Step(confirm)
	if g.State().Phase != "PLAY" {
		t.Errorf("phase = %q after confirm, want PLAY", g.State().Phase)
	}
}

func TestGameResetLogsBadConfig(t *testing.T) {
	var buf bytes.Buffer
	SetConfigPath(filepath.Join(t.TempDir(), "missing", "drive.yaml"))
	SetLogger(log.New(&buf))
	t.Cleanup(func() {
		SetConfigPath("")
		SetLogger(nil)
	})

	g := NewWithClock(VariantNeon, core.NewManualClock(epoch))
	g.Reset(testRuntime())

	if !strings.Contains(buf.String(), "cannot load drive config") {
		t.Errorf("log = %q, want config warning", buf.String())
	}
	if g.State().Phase != "PLAY" {
		t.Errorf("phase = %q, want PLAY on defaults", g.State().Phase)
	}
}

func TestRender(t *testing.T) {
	g := NewWithClock(VariantNeon, core.NewManualClock(epoch))
	g.Reset(testRuntime())

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	out := scr.String()

	if !strings.Contains(out, "START LIGHT") {
		t.Errorf("render missing stage title:\n%s", out)
	}
	if !strings.Contains(out, "RED") {
		t.Errorf("render missing start light:\n%s", out)
	}
	if !strings.ContainsRune(out, carGlyph) {
		t.Errorf("render missing car:\n%s", out)
	}
	if !strings.Contains(out, "Mission:") {
		t.Errorf("render missing mission:\n%s", out)
	}
}

func TestRenderSlalomCones(t *testing.T) {
	g := NewWithClock(VariantNeon, core.NewManualClock(epoch))
	g.Reset(testRuntime())
	g.Run().State().loadStage(1)

	scr := core.NewScreen(100, 30)
	g.Render(scr)
	if n := strings.Count(scr.String(), string(coneGlyph)); n == 0 {
		t.Errorf("no cones drawn:\n%s", scr.String())
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := NewWithClock(VariantNeon, core.NewManualClock(epoch))
	g.Reset(testRuntime())

	scr := core.NewScreen(30, 10)
	g.Render(scr)
	if !strings.Contains(scr.String(), "Window too small") {
		t.Errorf("expected size warning:\n%s", scr.String())
	}
}

func TestHeadingGlyph(t *testing.T) {
	tests := []struct {
		heading float64
		want    rune
	}{
		{0, '→'},
		{1.5708, '↓'},
		{3.1416, '←'},
		{-1.5708, '↑'},
		{6.2832, '→'},
	}
	for _, tt := range tests {
		if got := headingGlyph(tt.heading); got != tt.want {
			t.Errorf("headingGlyph(%v) = %q, want %q", tt.heading, got, tt.want)
		}
	}
}
