package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultTrackWidth     = 8.0
	DefaultTrackDepth     = 20.0
	DefaultFloorThickness = 0.4
	DefaultWallHeight     = 1.0
	DefaultWallThickness  = 0.2
	DefaultSlopeDeg       = 5.0
	DefaultFloorFriction  = 0.4

	DefaultMarbleRadius      = 0.5
	DefaultMarbleDensity     = 1.0
	DefaultMarbleFriction    = 0.5
	DefaultMarbleRestitution = 0.2
	DefaultStartY            = 2.0
	DefaultStartZ            = -8.0
	DefaultStartPush         = 2.0

	DefaultControlForce = 4.0

	DefaultCameraHeight   = 6.0
	DefaultCameraDistance = 12.0
	DefaultSmoothRate     = 5.0
	DefaultLookAhead      = 8.0
	DefaultLookDown       = 2.0

	DefaultGravityY = -9.81
	DefaultMaxStep  = 1.0 / 60.0
	DefaultSubsteps = 4
)

type Config struct {
	Track   TrackConfig   `yaml:"track"`
	Marble  MarbleConfig  `yaml:"marble"`
	Control ControlConfig `yaml:"control"`
	Camera  CameraConfig  `yaml:"camera"`
	Physics PhysicsConfig `yaml:"physics"`
}

type TrackConfig struct {
	Width          float64 `yaml:"width"`
	Depth          float64 `yaml:"depth"`
	FloorThickness float64 `yaml:"floor_thickness"`
	WallHeight     float64 `yaml:"wall_height"`
	WallThickness  float64 `yaml:"wall_thickness"`
	SlopeDeg       float64 `yaml:"slope_deg"`
	FloorFriction  float64 `yaml:"floor_friction"`
}

type MarbleConfig struct {
	Radius      float64 `yaml:"radius"`
	Density     float64 `yaml:"density"`
	Friction    float64 `yaml:"friction"`
	Restitution float64 `yaml:"restitution"`
	StartY      float64 `yaml:"start_y"`
	StartZ      float64 `yaml:"start_z"`
	StartPush   float64 `yaml:"start_push"`
}

type ControlConfig struct {
	Force float64 `yaml:"force"`
}

type CameraConfig struct {
	Height     float64 `yaml:"height"`
	Distance   float64 `yaml:"distance"`
	SmoothRate float64 `yaml:"smooth_rate"`
	LookAhead  float64 `yaml:"look_ahead"`
	LookDown   float64 `yaml:"look_down"`
}

type PhysicsConfig struct {
	GravityY float64 `yaml:"gravity_y"`
	MaxStep  float64 `yaml:"max_step"`
	Substeps int     `yaml:"substeps"`
}

func DefaultConfig() *Config {
	return &Config{
		Track: TrackConfig{
			Width:          DefaultTrackWidth,
			Depth:          DefaultTrackDepth,
			FloorThickness: DefaultFloorThickness,
			WallHeight:     DefaultWallHeight,
			WallThickness:  DefaultWallThickness,
			SlopeDeg:       DefaultSlopeDeg,
			FloorFriction:  DefaultFloorFriction,
		},
		Marble: MarbleConfig{
			Radius:      DefaultMarbleRadius,
			Density:     DefaultMarbleDensity,
			Friction:    DefaultMarbleFriction,
			Restitution: DefaultMarbleRestitution,
			StartY:      DefaultStartY,
			StartZ:      DefaultStartZ,
			StartPush:   DefaultStartPush,
		},
		Control: ControlConfig{
			Force: DefaultControlForce,
		},
		Camera: CameraConfig{
			Height:     DefaultCameraHeight,
			Distance:   DefaultCameraDistance,
			SmoothRate: DefaultSmoothRate,
			LookAhead:  DefaultLookAhead,
			LookDown:   DefaultLookDown,
		},
		Physics: PhysicsConfig{
			GravityY: DefaultGravityY,
			MaxStep:  DefaultMaxStep,
			Substeps: DefaultSubsteps,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
