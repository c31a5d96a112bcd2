package follow

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleProfiles = `
# camera profiles
[default]
orbitDistance = 15
orbitHeight = 4.5
softGroundClamp = off
teleportSnapFrames = 5

; second profile
[cinematic]
orbitDistance = 20
clampPitch = yes
bogusKey = 3
this line has no equals sign
pitchBias = not-a-number
`

func TestParseProfiles(t *testing.T) {
	profiles, order := ParseProfiles(strings.NewReader(sampleProfiles))

	if len(profiles) != 2 {
		t.Fatalf("got %d profiles, want 2", len(profiles))
	}
	if len(order) != 2 || order[0] != "default" || order[1] != "cinematic" {
		t.Fatalf("order = %v, want [default cinematic]", order)
	}

	def := profiles["default"]
	if def.OrbitDistance != 15 || def.OrbitHeight != 4.5 {
		t.Errorf("default orbit = (%v, %v), want (15, 4.5)", def.OrbitDistance, def.OrbitHeight)
	}
	if def.SoftGroundClamp {
		t.Error("softGroundClamp = off was not applied")
	}
	if def.TeleportSnapFrames != 5 {
		t.Errorf("teleportSnapFrames = %d, want 5", def.TeleportSnapFrames)
	}

	cin := profiles["cinematic"]
	if cin.OrbitDistance != 20 {
		t.Errorf("cinematic orbitDistance = %v, want 20", cin.OrbitDistance)
	}
	if !cin.ClampPitch {
		t.Error("clampPitch = yes was not applied")
	}
	// Malformed value lines keep the default.
	if cin.PitchBias != DefaultConfig().PitchBias {
		t.Errorf("malformed pitchBias overwrote the default: %v", cin.PitchBias)
	}
}

func TestParseProfilesValidatesOnCommit(t *testing.T) {
	profiles, _ := ParseProfiles(strings.NewReader("[default]\norbitDistance = -3\nsprintMultiplier = 0.1\n"))
	cfg := profiles["default"]
	if cfg.OrbitDistance < 0 {
		t.Errorf("orbitDistance = %v, want clamped to >= 0", cfg.OrbitDistance)
	}
	if cfg.SprintMultiplier < 1 {
		t.Errorf("sprintMultiplier = %v, want clamped to >= 1", cfg.SprintMultiplier)
	}
}

func TestParseProfilesKeysBeforeSection(t *testing.T) {
	profiles, order := ParseProfiles(strings.NewReader("orbitDistance = 99\n[default]\n"))
	if len(order) != 1 {
		t.Fatalf("order = %v, want one profile", order)
	}
	if profiles["default"].OrbitDistance != DefaultConfig().OrbitDistance {
		t.Error("key outside any section leaked into a profile")
	}
}

func TestParseBoolTokens(t *testing.T) {
	for _, token := range []string{"true", "1", "yes", "on", "TRUE", "Yes"} {
		if v, ok := parseBool(token); !ok || !v {
			t.Errorf("parseBool(%q) = (%v, %v), want (true, true)", token, v, ok)
		}
	}
	for _, token := range []string{"false", "0", "no", "off", "OFF"} {
		if v, ok := parseBool(token); !ok || v {
			t.Errorf("parseBool(%q) = (%v, %v), want (false, true)", token, v, ok)
		}
	}
	if _, ok := parseBool("maybe"); ok {
		t.Error(`parseBool("maybe") accepted an unknown token`)
	}
}

func TestLoadProfileFallback(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profiles.ini")
	if err := os.WriteFile(path, []byte(sampleProfiles), 0o644); err != nil {
		t.Fatal(err)
	}

	// Named profile.
	cfg, ok := LoadProfile(path, "cinematic")
	if !ok || cfg.OrbitDistance != 20 {
		t.Errorf("named lookup: ok=%v orbitDistance=%v", ok, cfg.OrbitDistance)
	}

	// Unknown name falls back to "default".
	cfg, ok = LoadProfile(path, "no_such_profile")
	if !ok || cfg.OrbitDistance != 15 {
		t.Errorf("default fallback: ok=%v orbitDistance=%v", ok, cfg.OrbitDistance)
	}

	// No "default" section: first profile in the file wins.
	alt := filepath.Join(dir, "alt.ini")
	if err := os.WriteFile(alt, []byte("[first]\norbitDistance = 7\n[second]\norbitDistance = 8\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, ok = LoadProfile(alt, "missing")
	if !ok || cfg.OrbitDistance != 7 {
		t.Errorf("first-profile fallback: ok=%v orbitDistance=%v", ok, cfg.OrbitDistance)
	}
}

func TestLoadProfileMissingFile(t *testing.T) {
	if _, ok := LoadProfile(filepath.Join(t.TempDir(), "nope.ini"), "default"); ok {
		t.Error("LoadProfile reported success for a missing file")
	}
}
