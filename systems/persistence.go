package systems

import (
	"encoding/json"
	"log/slog"

	"github.com/automoto/doomerang-recoil/components"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the range preferences stored on disk
type SavedSettings struct {
	Weapon      string             `json:"weapon"`
	ScreenShake bool               `json:"screenShake"`
	Multipliers map[string]float64 `json:"multipliers"` // camera multiplier per weapon
}

// SavedRecord holds results that outlive a session
type SavedRecord struct {
	BestScore int `json:"bestScore"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "doomerang-recoil",
	})
	if err != nil {
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	var settings SavedSettings
	ok, err := loadItem("settings", &settings)
	if !ok {
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	return saveItem("settings", s)
}

// SaveCurrentSettings captures the active weapon and every engine's
// multiplier and shake state.
func SaveCurrentSettings(ecs *ecs.ECS) {
	saved := &SavedSettings{
		Multipliers: map[string]float64{},
	}
	components.Weapon.Each(ecs.World, func(entry *donburi.Entry) {
		w := components.Weapon.Get(entry)
		saved.Multipliers[w.Name] = w.Engine.RecoilMultiplier()
		if w.Active {
			saved.Weapon = w.Name
			saved.ScreenShake = w.Engine.Settings().ScreenShake.Enabled
		}
	})
	_ = SaveSettings(saved)
}

// ApplySavedSettings applies loaded settings to the weapons in the world
func ApplySavedSettings(ecs *ecs.ECS, saved *SavedSettings) {
	if saved == nil {
		return
	}

	components.Weapon.Each(ecs.World, func(entry *donburi.Entry) {
		w := components.Weapon.Get(entry)
		if m, ok := saved.Multipliers[w.Name]; ok && m >= 0 {
			w.Engine.SetRecoilMultiplier(m)
		}
		w.Engine.SetScreenShake(saved.ScreenShake)
	})

	if saved.Weapon != "" {
		SelectWeapon(ecs, saved.Weapon)
	}
}

// LoadBestScore returns the best score recorded so far, or 0.
func LoadBestScore() int {
	var record SavedRecord
	if ok, _ := loadItem("record", &record); !ok {
		return 0
	}
	return record.BestScore
}

// SaveBestScore records a new best score
func SaveBestScore(points int) {
	_ = saveItem("record", &SavedRecord{BestScore: points})
}

func loadItem(key string, v any) (bool, error) {
	if !gdataInitialized || gdataManager == nil {
		return false, nil
	}

	data, err := gdataManager.LoadItem(key)
	if err != nil {
		slog.Warn("persistence_load_failed", "item", key, "err", err)
		return false, nil
	}
	if len(data) == 0 {
		// Nothing saved yet, use defaults
		return false, nil
	}

	if err := json.Unmarshal(data, v); err != nil {
		slog.Warn("persistence_parse_failed", "item", key, "err", err)
		return false, err
	}
	return true, nil
}

func saveItem(key string, v any) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		slog.Warn("persistence_encode_failed", "item", key, "err", err)
		return err
	}

	if err := gdataManager.SaveItem(key, data); err != nil {
		slog.Warn("persistence_save_failed", "item", key, "err", err)
		return err
	}
	return nil
}
