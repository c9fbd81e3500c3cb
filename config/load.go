package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// ErrInvalid marks a configuration value that cannot be used as given.
var ErrInvalid = errors.New("invalid config")

// overlay mirrors the on-disk layout. Sections are kept as nodes so they can
// be decoded on top of the current values, leaving absent keys untouched.
type overlay struct {
	Window        yaml.Node            `yaml:"window"`
	Range         yaml.Node            `yaml:"range"`
	Debug         yaml.Node            `yaml:"debug"`
	DefaultWeapon string               `yaml:"default_weapon"`
	Weapons       map[string]yaml.Node `yaml:"weapons"`
}

// Load overlays a YAML file on the current configuration.
// If path is empty, the built-in defaults are kept.
func Load(path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := Apply(data); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	return nil
}

// Apply overlays YAML data on the current configuration. Weapons that are
// not yet known start from DefaultRecoil.
func Apply(data []byte) error {
	var o overlay
	if err := yaml.Unmarshal(data, &o); err != nil {
		return err
	}

	if err := decodeNode(&o.Window, C); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	if err := decodeNode(&o.Range, &Range); err != nil {
		return fmt.Errorf("range: %w", err)
	}
	if err := decodeNode(&o.Debug, &Debug); err != nil {
		return fmt.Errorf("debug: %w", err)
	}

	for _, name := range slices.Sorted(maps.Keys(o.Weapons)) {
		node := o.Weapons[name]
		w, ok := Weapons[name]
		if !ok {
			w = DefaultRecoil()
			WeaponOrder = append(WeaponOrder, name)
		}
		if err := decodeNode(&node, &w); err != nil {
			return fmt.Errorf("weapon %q: %w", name, err)
		}
		w.Name = name
		Weapons[name] = w
	}

	if o.DefaultWeapon != "" {
		if _, ok := Weapons[o.DefaultWeapon]; !ok {
			return fmt.Errorf("%w: default weapon %q is not defined", ErrInvalid, o.DefaultWeapon)
		}
		DefaultWeapon = o.DefaultWeapon
	}
	return nil
}

func decodeNode(n *yaml.Node, out any) error {
	if n.Kind == 0 {
		return nil
	}
	return n.Decode(out)
}

// Validate reports every unusable value in a weapon profile. The engine
// still runs with such a profile, substituting where it can.
func Validate(w WeaponConfig) error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s: %s", ErrInvalid, w.Name, fmt.Sprintf(format, args...)))
	}

	if len(w.Pattern.Steps) == 0 {
		bad("pattern has no steps")
	}
	if w.Pattern.Falloff.End > w.Pattern.Falloff.Start {
		bad("falloff end %.2f exceeds start %.2f", w.Pattern.Falloff.End, w.Pattern.Falloff.Start)
	}

	s := w.Settings
	if s.MaxCameraRecoil <= 0 {
		bad("max_camera_recoil must be positive, got %v", s.MaxCameraRecoil)
	}
	if s.KickSpeed <= 0 {
		bad("kick_speed must be positive, got %v", s.KickSpeed)
	}
	if s.CameraRecoverySpeed <= 0 {
		bad("camera_recovery_speed must be positive, got %v", s.CameraRecoverySpeed)
	}
	if s.GunRecoverySpeed <= 0 {
		bad("gun_recovery_speed must be positive, got %v", s.GunRecoverySpeed)
	}
	if s.RecoveryDelay < 0 {
		bad("recovery_delay must not be negative, got %v", s.RecoveryDelay)
	}
	if s.PatternResetTime < 0 {
		bad("pattern_reset_time must not be negative, got %v", s.PatternResetTime)
	}
	if s.ScreenShake.Enabled && s.ScreenShake.Duration <= 0 {
		bad("screen_shake.duration must be positive when enabled, got %v", s.ScreenShake.Duration)
	}
	if w.Automatic && w.FireRate <= 0 {
		bad("fire_rate must be positive for automatic weapons, got %v", w.FireRate)
	}
	return errors.Join(errs...)
}
