package config

// Presets are named track setups selectable from the CLI.
var Presets = map[string]*Config{
	"gentle": presetWith(func(c *Config) {
		c.Track.SlopeDeg = 3.0
		c.Marble.StartPush = 1.0
	}),
	"steep": presetWith(func(c *Config) {
		c.Track.SlopeDeg = 12.0
		c.Track.Depth = 40.0
		c.Marble.StartZ = -18.0
	}),
	"ice": presetWith(func(c *Config) {
		c.Track.FloorFriction = 0.05
		c.Marble.Friction = 0.05
		c.Marble.Restitution = 0.4
	}),
	"bouncy": presetWith(func(c *Config) {
		c.Marble.Restitution = 0.8
		c.Marble.StartY = 4.0
	}),
	"narrow": presetWith(func(c *Config) {
		c.Track.Width = 3.0
		c.Control.Force = 6.0
	}),
}

func presetWith(mutate func(*Config)) *Config {
	cfg := DefaultConfig()
	mutate(cfg)
	return cfg
}

// GetPreset returns a copy of the named preset, or nil if it does not exist.
func GetPreset(name string) *Config {
	base, ok := Presets[name]
	if !ok {
		return nil
	}
	copied := *base
	return &copied
}

// ListPresets returns the available preset names.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
