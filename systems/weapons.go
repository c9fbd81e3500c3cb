package systems

import (
	"log/slog"

	"github.com/automoto/doomerang-recoil/components"
	cfg "github.com/automoto/doomerang-recoil/config"
	"github.com/automoto/doomerang-recoil/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ActiveWeapon returns the weapon currently driving the camera.
func ActiveWeapon(ecs *ecs.ECS) (*donburi.Entry, bool) {
	var found *donburi.Entry
	components.Weapon.Each(ecs.World, func(entry *donburi.Entry) {
		if found == nil && components.Weapon.Get(entry).Active {
			found = entry
		}
	})
	return found, found != nil
}

func findWeapon(ecs *ecs.ECS, name string) (*donburi.Entry, bool) {
	var found *donburi.Entry
	components.Weapon.Each(ecs.World, func(entry *donburi.Entry) {
		if found == nil && components.Weapon.Get(entry).Name == name {
			found = entry
		}
	})
	return found, found != nil
}

// SelectWeapon makes the named weapon active. Both the outgoing and the
// incoming engine are reset so no recoil carries across the switch.
func SelectWeapon(ecs *ecs.ECS, name string) bool {
	next, ok := findWeapon(ecs, name)
	if !ok {
		slog.Warn("weapon_unknown", "weapon", name)
		return false
	}
	if components.Weapon.Get(next).Active {
		return true
	}

	components.Weapon.Each(ecs.World, func(entry *donburi.Entry) {
		w := components.Weapon.Get(entry)
		if w.Active {
			w.Engine.Reset()
			w.Active = false
		}
	})

	w := components.Weapon.Get(next)
	w.Engine.Reset()
	w.Fire.Cooldown = 0
	if cameraEntry, ok := tags.Camera.First(ecs.World); ok {
		w.Engine.SetBaseOrientation(components.Camera.Get(cameraEntry).Base)
	}
	w.Active = true

	slog.Info("weapon_selected", "weapon", name)
	return true
}

// UpdateWeaponSwitch handles weapon selection, reset, the recoil multiplier
// and the screen shake toggle.
func UpdateWeaponSwitch(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	changed := false

	slots := []components.ActionID{
		components.ActionWeapon1,
		components.ActionWeapon2,
		components.ActionWeapon3,
	}
	for i, action := range slots {
		if GetAction(input, action).JustPressed && i < len(cfg.WeaponOrder) {
			changed = SelectWeapon(ecs, cfg.WeaponOrder[i]) || changed
		}
	}
	if GetAction(input, components.ActionNextWeapon).JustPressed {
		changed = cycleWeapon(ecs) || changed
	}

	entry, ok := ActiveWeapon(ecs)
	if !ok {
		return
	}
	w := components.Weapon.Get(entry)

	if GetAction(input, components.ActionReset).JustPressed {
		w.Engine.Reset()
	}

	step := cfg.Range.MultiplierStep
	if GetAction(input, components.ActionMultiplierUp).JustPressed {
		w.Engine.SetRecoilMultiplier(w.Engine.RecoilMultiplier() + step)
		changed = true
	}
	if GetAction(input, components.ActionMultiplierDown).JustPressed {
		w.Engine.SetRecoilMultiplier(max(0, w.Engine.RecoilMultiplier()-step))
		changed = true
	}

	if GetAction(input, components.ActionToggleShake).JustPressed {
		SetScreenShake(ecs, !w.Engine.Settings().ScreenShake.Enabled)
		changed = true
	}

	if changed {
		SaveCurrentSettings(ecs)
	}
}

// SetScreenShake toggles the jitter on every weapon.
func SetScreenShake(ecs *ecs.ECS, enabled bool) {
	components.Weapon.Each(ecs.World, func(entry *donburi.Entry) {
		components.Weapon.Get(entry).Engine.SetScreenShake(enabled)
	})
}

func cycleWeapon(ecs *ecs.ECS) bool {
	if len(cfg.WeaponOrder) == 0 {
		return false
	}
	next := 0
	if entry, ok := ActiveWeapon(ecs); ok {
		next = (components.Weapon.Get(entry).Slot + 1) % len(cfg.WeaponOrder)
	}
	return SelectWeapon(ecs, cfg.WeaponOrder[next])
}
