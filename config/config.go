package config

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Config contains window and frame timing configuration
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	TPS    int `yaml:"tps"` // simulation ticks per second
}

// FalloffConfig shapes recoil strength across the pattern
type FalloffConfig struct {
	Curve string  `yaml:"curve"` // easing name, see recoil.ParseCurve
	Start float64 `yaml:"start"` // multiplier at the first shot
	End   float64 `yaml:"end"`   // multiplier the curve approaches at the end
}

// PatternConfig contains the spray pattern of a weapon
type PatternConfig struct {
	Steps          []r2.Vec      `yaml:"steps"` // X = horizontal, Y = vertical (up)
	BaseMultiplier float64       `yaml:"base_multiplier"`
	Intensity      float64       `yaml:"intensity"`
	Falloff        FalloffConfig `yaml:"falloff"`
}

// ScreenShakeConfig contains the per-shot camera jitter
type ScreenShakeConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Intensity float64 `yaml:"intensity"` // peak strength
	Duration  float64 `yaml:"duration"`  // seconds
	Scale     float64 `yaml:"scale"`     // world units per unit of intensity
}

// RecoilSettings contains camera, gun model and timing parameters
type RecoilSettings struct {
	// Camera recoil
	CameraMultiplier    float64 `yaml:"camera_multiplier"`
	CameraRecoverySpeed float64 `yaml:"camera_recovery_speed"`
	MaxCameraRecoil     float64 `yaml:"max_camera_recoil"`
	KickSpeed           float64 `yaml:"kick_speed"` // how fast the view chases the target

	// Gun model recoil
	GunMultiplier     float64 `yaml:"gun_multiplier"`
	GunRecoverySpeed  float64 `yaml:"gun_recovery_speed"`
	GunRecoilRotation r3.Vec  `yaml:"gun_recoil_rotation"` // degrees at full intensity
	GunRecoilPosition r3.Vec  `yaml:"gun_recoil_position"` // units at full intensity

	ScreenShake ScreenShakeConfig `yaml:"screen_shake"`

	// Recovery
	RecoveryDelay    float64 `yaml:"recovery_delay"`     // seconds before recoil starts recovering
	PatternResetTime float64 `yaml:"pattern_reset_time"` // idle seconds before the pattern restarts
}

// WeaponConfig contains everything needed to build one recoil engine
type WeaponConfig struct {
	Name      string         `yaml:"name"`
	Automatic bool           `yaml:"automatic"`
	FireRate  float64        `yaml:"fire_rate"` // rounds per minute when automatic
	Pattern   PatternConfig  `yaml:"pattern"`
	Settings  RecoilSettings `yaml:"settings"`
}

// TargetConfig places one scoring zone on the range, in world pixels
type TargetConfig struct {
	Name   string  `yaml:"name"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Points int     `yaml:"points"`
}

// RangeConfig contains the shooting range host configuration
type RangeConfig struct {
	WorldWidth      int     `yaml:"world_width"`
	WorldHeight     int     `yaml:"world_height"`
	PixelsPerDegree float64 `yaml:"pixels_per_degree"`
	LookSensitivity float64 `yaml:"look_sensitivity"` // degrees per mouse pixel
	MaxPitch        float64 `yaml:"max_pitch"`
	FlashSeconds    float64 `yaml:"flash_seconds"`    // how long a hit zone stays highlighted
	FeedbackSeconds float64 `yaml:"feedback_seconds"` // how long hit/miss text stays up
	MultiplierStep  float64 `yaml:"multiplier_step"`
	GunScale        float64 `yaml:"gun_scale"`    // screen pixels per gun model unit
	ShakePixels     float64 `yaml:"shake_pixels"` // screen pixels per unit of camera jitter

	Targets []TargetConfig `yaml:"targets"`
}

// DebugConfig contains debug toggles
type DebugConfig struct {
	ShowOffsets bool `yaml:"show_offsets"`
	Persist     bool `yaml:"persist"`
}

var (
	C             *Config
	Range         RangeConfig
	Debug         DebugConfig
	Weapons       map[string]WeaponConfig
	WeaponOrder   []string
	DefaultWeapon string
)

// DefaultRecoil returns the rifle recoil profile every weapon starts from.
func DefaultRecoil() WeaponConfig {
	return WeaponConfig{
		Name:      "rifle",
		Automatic: true,
		FireRate:  600,
		Pattern: PatternConfig{
			Steps: []r2.Vec{
				// Initial strong kick
				{X: 0.1, Y: 1.8},
				{X: -0.3, Y: 1.5},
				{X: 0.4, Y: 1.2},

				// Mid-spray sway
				{X: -0.6, Y: 0.9},
				{X: 0.7, Y: 0.7},
				{X: -0.4, Y: 0.8}, // vertical hiccup
				{X: 0.5, Y: 0.6},
				{X: -0.2, Y: 0.5},

				// Late spray
				{X: 0.3, Y: 0.4},
				{X: -0.35, Y: 0.35},
				{X: 0.2, Y: 0.3},
				{X: 0, Y: 0.25},
			},
			BaseMultiplier: 1.0,
			Intensity:      1.0,
			Falloff: FalloffConfig{
				Curve: "smoothstep",
				Start: 1.0,
				End:   0.3,
			},
		},
		Settings: RecoilSettings{
			CameraMultiplier:    1.0,
			CameraRecoverySpeed: 8.0,
			MaxCameraRecoil:     15.0,
			KickSpeed:           15.0,

			GunMultiplier:     1.0,
			GunRecoverySpeed:  12.0,
			GunRecoilRotation: r3.Vec{X: -5, Y: 0, Z: 0},
			GunRecoilPosition: r3.Vec{X: 0, Y: 0, Z: -0.1},

			ScreenShake: ScreenShakeConfig{
				Enabled:   true,
				Intensity: 0.5,
				Duration:  0.1,
				Scale:     0.1,
			},

			RecoveryDelay:    0.3,
			PatternResetTime: 1.0,
		},
	}
}

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		TPS:    60,
	}

	rifle := DefaultRecoil()

	smg := DefaultRecoil()
	smg.Name = "smg"
	smg.FireRate = 900
	smg.Pattern.Steps = []r2.Vec{
		{X: 0.2, Y: 0.9},
		{X: -0.4, Y: 0.8},
		{X: 0.5, Y: 0.7},
		{X: -0.5, Y: 0.6},
		{X: 0.4, Y: 0.6},
		{X: -0.3, Y: 0.5},
		{X: 0.3, Y: 0.4},
		{X: -0.2, Y: 0.4},
	}
	smg.Pattern.Falloff.Curve = "in_out_sine"
	smg.Settings.CameraRecoverySpeed = 10.0
	smg.Settings.MaxCameraRecoil = 10.0
	smg.Settings.RecoveryDelay = 0.2
	smg.Settings.ScreenShake.Intensity = 0.3

	pistol := DefaultRecoil()
	pistol.Name = "pistol"
	pistol.Automatic = false
	pistol.FireRate = 300
	pistol.Pattern.Steps = []r2.Vec{
		{X: 0, Y: 2.5},
		{X: 0.3, Y: 2.2},
		{X: -0.3, Y: 2.0},
	}
	pistol.Pattern.Falloff = FalloffConfig{Curve: "linear", Start: 1.0, End: 0.8}
	pistol.Settings.CameraRecoverySpeed = 6.0
	pistol.Settings.GunRecoilRotation = r3.Vec{X: -12, Y: 0, Z: 0}
	pistol.Settings.GunRecoilPosition = r3.Vec{X: 0, Y: 0, Z: -0.2}
	pistol.Settings.RecoveryDelay = 0.15
	pistol.Settings.PatternResetTime = 0.6

	Weapons = map[string]WeaponConfig{
		rifle.Name:  rifle,
		smg.Name:    smg,
		pistol.Name: pistol,
	}
	WeaponOrder = []string{rifle.Name, smg.Name, pistol.Name}
	DefaultWeapon = rifle.Name

	// Range Config
	Range = RangeConfig{
		WorldWidth:      4096,
		WorldHeight:     2048,
		PixelsPerDegree: 24.0,
		LookSensitivity: 0.1,
		MaxPitch:        89.0,
		FlashSeconds:    0.5,
		FeedbackSeconds: 0.75,
		MultiplierStep:  0.1,
		GunScale:        400.0,
		ShakePixels:     40.0,

		// Coordinates are world pixels; the view origin sits at the world centre.
		Targets: []TargetConfig{
			{Name: "Bullseye", X: 2032, Y: 1008, Width: 32, Height: 32, Points: 50},
			{Name: "Inner", X: 2008, Y: 984, Width: 80, Height: 80, Points: 25},
			{Name: "Outer", X: 1976, Y: 952, Width: 144, Height: 144, Points: 10},
			{Name: "Left plate", X: 1700, Y: 1120, Width: 60, Height: 60, Points: 10},
			{Name: "Right plate", X: 2336, Y: 1120, Width: 60, Height: 60, Points: 10},
		},
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		ShowOffsets: true,
		Persist:     true,
	}
}

// Weapon returns the named weapon profile.
func Weapon(name string) (WeaponConfig, bool) {
	w, ok := Weapons[name]
	return w, ok
}
