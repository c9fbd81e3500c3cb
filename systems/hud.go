package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/doomerang-recoil/components"
	cfg "github.com/automoto/doomerang-recoil/config"
	"github.com/automoto/doomerang-recoil/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin     = 12
	hudLineHeight = 18
	hudPanelWidth = 230
)

var (
	hudTextColor  = color.RGBA{230, 230, 230, 255}
	hudPanelColor = color.RGBA{0, 0, 0, 140}
	hitColor      = color.RGBA{90, 230, 90, 255}
	missColor     = color.RGBA{230, 90, 90, 255}
)

// DrawHUD renders weapon and score panels and the hit/miss feedback.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	lines := hudLines(ecs)

	vector.FillRect(screen,
		hudMargin/2, hudMargin/2,
		hudPanelWidth, float32(len(lines)*hudLineHeight+hudMargin),
		hudPanelColor, false)

	face := fonts.HUD.Get()
	for i, line := range lines {
		text.Draw(screen, line, face, hudMargin, hudMargin+(i+1)*hudLineHeight, hudTextColor)
	}

	score := GetOrCreateScore(ecs)
	if score.Feedback != "" {
		c := missColor
		if score.FeedbackHit {
			c = hitColor
		}
		x := screen.Bounds().Dx()/2 + 24
		y := screen.Bounds().Dy()/2 - 24
		text.Draw(screen, score.Feedback, fonts.Feedback.Get(), x, y, c)
	}
}

// hudLines builds the panel text. Debug lines follow cfg.Debug.ShowOffsets.
func hudLines(ecs *ecs.ECS) []string {
	score := GetOrCreateScore(ecs)

	accuracy := 0.0
	if score.Shots > 0 {
		accuracy = 100 * float64(score.Hits) / float64(score.Shots)
	}
	lines := []string{
		fmt.Sprintf("Score %d  (best %d)", score.Points, score.Best),
		fmt.Sprintf("Hits %d / %d  %.0f%%", score.Hits, score.Shots, accuracy),
	}

	entry, ok := ActiveWeapon(ecs)
	if !ok {
		return append(lines, "No weapon")
	}
	w := components.Weapon.Get(entry)
	engine := w.Engine

	mode := "semi"
	if w.Fire.Automatic {
		mode = "auto"
	}
	shake := "off"
	if engine.Settings().ScreenShake.Enabled {
		shake = "on"
	}
	lines = append(lines,
		fmt.Sprintf("Weapon %s (%s)", w.Name, mode),
		fmt.Sprintf("Recoil x%.1f  shake %s", engine.RecoilMultiplier(), shake),
	)

	if cfg.Debug.ShowOffsets {
		offset := engine.Offset()
		target := engine.Target()
		lines = append(lines,
			fmt.Sprintf("Shot %d/%d  %s", engine.PatternIndex(), len(engine.Pattern()), engine.State()),
			fmt.Sprintf("Offset %.2f, %.2f", offset.X, offset.Y),
			fmt.Sprintf("Target %.2f, %.2f", target.X, target.Y),
		)
	}
	return lines
}
