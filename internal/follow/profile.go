package follow

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Profile files are INI-style:
//
//	# comment
//	[profile_name]
//	key = value
//
// Lines starting with '#' or ';' are comments. A profile runs until the
// next section header or EOF. Unknown keys and malformed lines are skipped
// so an edited file can never take the camera down.

type fieldKind int

const (
	kindFloat fieldKind = iota
	kindInt
	kindBool
)

// profileKey maps a config file key to its field. The loader is driven by
// this static table; there is no reflection.
type profileKey struct {
	name     string
	kind     fieldKind
	setFloat func(*Config, float32)
	setInt   func(*Config, int)
	setBool  func(*Config, bool)
}

var profileKeys = []profileKey{
	{name: "orbitDistance", kind: kindFloat, setFloat: func(c *Config, v float32) { c.OrbitDistance = v }},
	{name: "orbitHeight", kind: kindFloat, setFloat: func(c *Config, v float32) { c.OrbitHeight = v }},
	{name: "minDistanceFromPlayer", kind: kindFloat, setFloat: func(c *Config, v float32) { c.MinDistanceFromPlayer = v }},
	{name: "groundLevel", kind: kindFloat, setFloat: func(c *Config, v float32) { c.GroundLevel = v }},
	{name: "terrainBuffer", kind: kindFloat, setFloat: func(c *Config, v float32) { c.TerrainBuffer = v }},
	{name: "transitionSpeed", kind: kindFloat, setFloat: func(c *Config, v float32) { c.TransitionSpeed = v }},
	{name: "posResponsiveness", kind: kindFloat, setFloat: func(c *Config, v float32) { c.PosResponsiveness = v }},
	{name: "rotResponsiveness", kind: kindFloat, setFloat: func(c *Config, v float32) { c.RotResponsiveness = v }},
	{name: "maxDeltaTimeClamp", kind: kindFloat, setFloat: func(c *Config, v float32) { c.MaxDeltaTimeClamp = v }},
	{name: "moveSpeedHorizontal", kind: kindFloat, setFloat: func(c *Config, v float32) { c.MoveSpeedHorizontal = v }},
	{name: "moveSpeedVertical", kind: kindFloat, setFloat: func(c *Config, v float32) { c.MoveSpeedVertical = v }},
	{name: "freeAccelHz", kind: kindFloat, setFloat: func(c *Config, v float32) { c.FreeAccelHz = v }},
	{name: "sprintMultiplier", kind: kindFloat, setFloat: func(c *Config, v float32) { c.SprintMultiplier = v }},
	{name: "pitchAffectsForward", kind: kindBool, setBool: func(c *Config, v bool) { c.PitchAffectsForward = v }},
	{name: "freeVelDeadzone", kind: kindFloat, setFloat: func(c *Config, v float32) { c.FreeVelDeadzone = v }},
	{name: "freeLookSensYaw", kind: kindFloat, setFloat: func(c *Config, v float32) { c.FreeLookSensYaw = v }},
	{name: "freeLookSensPitch", kind: kindFloat, setFloat: func(c *Config, v float32) { c.FreeLookSensPitch = v }},
	{name: "invertFreeLookYaw", kind: kindBool, setBool: func(c *Config, v bool) { c.InvertFreeLookYaw = v }},
	{name: "invertFreeLookPitch", kind: kindBool, setBool: func(c *Config, v bool) { c.InvertFreeLookPitch = v }},
	{name: "invertLockYaw", kind: kindBool, setBool: func(c *Config, v bool) { c.InvertLockYaw = v }},
	{name: "invertLockPitch", kind: kindBool, setBool: func(c *Config, v bool) { c.InvertLockPitch = v }},
	{name: "shoulderOffset", kind: kindFloat, setFloat: func(c *Config, v float32) { c.ShoulderOffset = v }},
	{name: "dynamicShoulderFactor", kind: kindFloat, setFloat: func(c *Config, v float32) { c.DynamicShoulderFactor = v }},
	{name: "pitchBias", kind: kindFloat, setFloat: func(c *Config, v float32) { c.PitchBias = v }},
	{name: "pitchMin", kind: kindFloat, setFloat: func(c *Config, v float32) { c.PitchMin = v }},
	{name: "pitchMax", kind: kindFloat, setFloat: func(c *Config, v float32) { c.PitchMax = v }},
	{name: "topBlendScale", kind: kindFloat, setFloat: func(c *Config, v float32) { c.TopBlendScale = v }},
	{name: "clampPitch", kind: kindBool, setBool: func(c *Config, v bool) { c.ClampPitch = v }},
	{name: "alwaysTickFreeMode", kind: kindBool, setBool: func(c *Config, v bool) { c.AlwaysTickFreeMode = v }},
	{name: "nearVerticalDeg", kind: kindFloat, setFloat: func(c *Config, v float32) { c.NearVerticalDeg = v }},
	{name: "softGroundClamp", kind: kindBool, setBool: func(c *Config, v bool) { c.SoftGroundClamp = v }},
	{name: "groundClampHz", kind: kindFloat, setFloat: func(c *Config, v float32) { c.GroundClampHz = v }},
	{name: "enableObstacleAvoidance", kind: kindBool, setBool: func(c *Config, v bool) { c.EnableObstacleAvoidance = v }},
	{name: "obstacleMargin", kind: kindFloat, setFloat: func(c *Config, v float32) { c.ObstacleMargin = v }},
	{name: "enableTeleportHandling", kind: kindBool, setBool: func(c *Config, v bool) { c.EnableTeleportHandling = v }},
	{name: "teleportDistanceThreshold", kind: kindFloat, setFloat: func(c *Config, v float32) { c.TeleportDistanceThreshold = v }},
	{name: "teleportSnapFrames", kind: kindInt, setInt: func(c *Config, v int) { c.TeleportSnapFrames = v }},
	{name: "teleportBlendSeconds", kind: kindFloat, setFloat: func(c *Config, v float32) { c.TeleportBlendSeconds = v }},
	{name: "teleportBlendMinAlpha", kind: kindFloat, setFloat: func(c *Config, v float32) { c.TeleportBlendMinAlpha = v }},
}

var profileKeyIndex = func() map[string]*profileKey {
	m := make(map[string]*profileKey, len(profileKeys))
	for i := range profileKeys {
		m[profileKeys[i].name] = &profileKeys[i]
	}
	return m
}()

// ParseProfiles reads every profile from r. The second return value lists
// profile names in file order, for the "first profile" fallback.
func ParseProfiles(r io.Reader) (map[string]Config, []string) {
	profiles := make(map[string]Config)
	var order []string

	var current string
	cfg := DefaultConfig()
	inProfile := false

	commit := func() {
		if current == "" {
			return
		}
		cfg.Validate()
		if _, seen := profiles[current]; !seen {
			order = append(order, current)
		}
		profiles[current] = cfg
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' || line[0] == ';' {
			continue
		}

		if line[0] == '[' && line[len(line)-1] == ']' {
			if inProfile {
				commit()
			}
			current = strings.TrimSpace(line[1 : len(line)-1])
			cfg = DefaultConfig()
			inProfile = true
			continue
		}

		eq := strings.IndexByte(line, '=')
		if eq < 0 || !inProfile {
			continue
		}
		key := strings.TrimSpace(line[:eq])
		value := strings.TrimSpace(line[eq+1:])
		if key == "" {
			continue
		}
		applyKeyValue(&cfg, key, value)
	}
	if inProfile {
		commit()
	}

	return profiles, order
}

func applyKeyValue(cfg *Config, key, value string) bool {
	pk, ok := profileKeyIndex[key]
	if !ok {
		return false
	}
	switch pk.kind {
	case kindFloat:
		f, err := strconv.ParseFloat(value, 32)
		if err != nil {
			return false
		}
		pk.setFloat(cfg, float32(f))
	case kindInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return false
		}
		pk.setInt(cfg, i)
	case kindBool:
		b, ok := parseBool(value)
		if !ok {
			return false
		}
		pk.setBool(cfg, b)
	}
	return true
}

func parseBool(value string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "yes", "on":
		return true, true
	case "false", "0", "no", "off":
		return false, true
	}
	return false, false
}

// LoadProfile loads the named profile from path. Fallback order: the named
// profile, then "default", then the first profile in the file. Relative
// paths are also tried against ../ and ../../ so tools run from build
// subdirectories still find the shipped file.
func LoadProfile(path, profileName string) (Config, bool) {
	candidates := []string{path}
	if !filepath.IsAbs(path) {
		candidates = append(candidates, filepath.Join("..", path), filepath.Join("..", "..", path))
	}

	for _, candidate := range candidates {
		f, err := os.Open(candidate)
		if err != nil {
			continue
		}
		profiles, order := ParseProfiles(f)
		f.Close()
		if len(profiles) == 0 {
			continue
		}

		if cfg, ok := profiles[profileName]; ok {
			return cfg, true
		}
		if cfg, ok := profiles["default"]; ok {
			return cfg, true
		}
		return profiles[order[0]], true
	}

	return Config{}, false
}

// Load loads the "default" profile from path.
func Load(path string) (Config, bool) {
	return LoadProfile(path, "default")
}
