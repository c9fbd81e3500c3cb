package recoil

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Orientation is a pitch/yaw pair in degrees. Positive pitch looks down.
type Orientation struct {
	Pitch float64
	Yaw   float64
}

// Add returns o shifted by d.
func (o Orientation) Add(d Orientation) Orientation {
	return Orientation{Pitch: o.Pitch + d.Pitch, Yaw: o.Yaw + d.Yaw}
}

// ViewOffset combines a base orientation with a recoil offset. Vertical
// recoil pitches the view up, horizontal recoil yaws it.
func ViewOffset(base Orientation, offset r2.Vec) Orientation {
	return base.Add(Orientation{Pitch: -offset.Y, Yaw: offset.X})
}

// Pose is a local transform: position plus Euler rotation in degrees.
type Pose struct {
	Position r3.Vec
	Rotation r3.Vec
}

// ModelRig drives a weapon model toward a recoil pose derived from the
// current offset. The model chases from wherever it currently is.
type ModelRig struct {
	Rest    Pose
	Current Pose
}

// NewModelRig starts the model at its rest pose.
func NewModelRig(rest Pose) *ModelRig {
	return &ModelRig{Rest: rest, Current: rest}
}

// Tick moves the model toward rest + intensity*multiplier*kick.
func (m *ModelRig) Tick(dt float64, intensity, multiplier, speed float64, kick Pose) {
	k := intensity * multiplier
	target := Pose{
		Position: r3.Add(m.Rest.Position, r3.Scale(k, kick.Position)),
		Rotation: r3.Add(m.Rest.Rotation, r3.Scale(k, kick.Rotation)),
	}
	t := clamp01(dt * speed)
	m.Current.Position = lerp3(m.Current.Position, target.Position, t)
	m.Current.Rotation = lerp3(m.Current.Rotation, target.Rotation, t)
}

// Intensity normalises an offset by the recoil ceiling.
func Intensity(offset r2.Vec, maxRecoil float64) float64 {
	if maxRecoil <= 0 {
		return 0
	}
	return r2.Norm(offset) / maxRecoil
}

// CameraRig is the camera's captured rest transform.
type CameraRig struct {
	RestPosition r3.Vec
}

func lerp3(from, to r3.Vec, t float64) r3.Vec {
	return r3.Add(from, r3.Scale(t, r3.Sub(to, from)))
}
