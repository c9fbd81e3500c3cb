package systems

import (
	"cmp"
	"image/color"
	"math"
	"slices"

	"github.com/automoto/doomerang-recoil/components"
	cfg "github.com/automoto/doomerang-recoil/config"
	"github.com/automoto/doomerang-recoil/recoil"
	"github.com/automoto/doomerang-recoil/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	backgroundColor = color.RGBA{28, 32, 38, 255}
	wallColor       = color.RGBA{52, 58, 66, 255}
	crosshairColor  = color.RGBA{240, 240, 240, 255}
	gunColor        = color.RGBA{70, 70, 78, 255}
	flashColor      = color.RGBA{255, 255, 255, 255}

	targetColors = []color.RGBA{
		{200, 200, 200, 255},
		{60, 120, 220, 255},
		{220, 60, 60, 255},
		{250, 210, 40, 255},
	}
)

const (
	crosshairSize = 8
	crosshairGap  = 3
	gunWidth      = 70
	gunHeight     = 160
)

var gunImage *ebiten.Image
var gunDrawOp = &ebiten.DrawImageOptions{}

// viewOrigin returns the world point drawn at the screen centre.
func viewOrigin(ecs *ecs.ECS) (x, y float64) {
	entry, ok := tags.Camera.First(ecs.World)
	if !ok {
		return AimPoint(recoil.Orientation{})
	}
	camera := components.Camera.Get(entry)
	x, y = AimPoint(camera.Rotation)

	shake := cfg.Range.ShakePixels
	x += (camera.Position.X - camera.RestPosition.X) * shake
	y -= (camera.Position.Y - camera.RestPosition.Y) * shake
	return x, y
}

// DrawRange renders the back wall and the targets around the view.
func DrawRange(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	cx, cy := viewOrigin(ecs)
	halfW := float64(screen.Bounds().Dx()) / 2
	halfH := float64(screen.Bounds().Dy()) / 2
	offX, offY := halfW-cx, halfH-cy

	vector.FillRect(screen,
		float32(offX), float32(offY),
		float32(cfg.Range.WorldWidth), float32(cfg.Range.WorldHeight),
		wallColor, false)

	// Lower value zones first so nested zones stay visible.
	var entries []*donburi.Entry
	components.Target.Each(ecs.World, func(entry *donburi.Entry) {
		entries = append(entries, entry)
	})
	slices.SortStableFunc(entries, func(a, b *donburi.Entry) int {
		return cmp.Compare(components.Target.Get(a).Points, components.Target.Get(b).Points)
	})

	for i, entry := range entries {
		target := components.Target.Get(entry)
		obj := components.Object.Get(entry)

		c := targetColors[min(i, len(targetColors)-1)]
		if target.FlashRemaining > 0 {
			c = flashColor
		}
		vector.FillRect(screen,
			float32(obj.X+offX), float32(obj.Y+offY),
			float32(obj.W), float32(obj.H),
			c, false)
	}
}

// DrawCrosshair marks the aim point at the centre of the screen.
func DrawCrosshair(ecs *ecs.ECS, screen *ebiten.Image) {
	cx := float32(screen.Bounds().Dx()) / 2
	cy := float32(screen.Bounds().Dy()) / 2

	vector.StrokeLine(screen, cx-crosshairGap-crosshairSize, cy, cx-crosshairGap, cy, 2, crosshairColor, false)
	vector.StrokeLine(screen, cx+crosshairGap, cy, cx+crosshairGap+crosshairSize, cy, 2, crosshairColor, false)
	vector.StrokeLine(screen, cx, cy-crosshairGap-crosshairSize, cx, cy-crosshairGap, 2, crosshairColor, false)
	vector.StrokeLine(screen, cx, cy+crosshairGap, cx, cy+crosshairGap+crosshairSize, 2, crosshairColor, false)
}

// DrawGun draws the weapon silhouette in the lower right, displaced and
// tilted by the gun model pose.
func DrawGun(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := tags.GunModel.First(ecs.World)
	if !ok {
		return
	}
	gun := components.GunModel.Get(entry)

	if gunImage == nil {
		gunImage = ebiten.NewImage(gunWidth, gunHeight)
		gunImage.Fill(gunColor)
	}

	scale := cfg.Range.GunScale
	delta := r3.Sub(gun.Pose.Position, gun.Rest.Position)

	anchorX := float64(screen.Bounds().Dx()) * 0.75
	anchorY := float64(screen.Bounds().Dy()) + gunHeight*0.35

	gunDrawOp.GeoM.Reset()
	gunDrawOp.GeoM.Translate(-gunWidth/2, -gunHeight)
	gunDrawOp.GeoM.Rotate(gun.Pose.Rotation.X * math.Pi / 180)
	gunDrawOp.GeoM.Translate(
		anchorX+delta.X*scale,
		anchorY-delta.Y*scale-delta.Z*scale,
	)
	screen.DrawImage(gunImage, gunDrawOp)
}
