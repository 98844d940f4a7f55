package main

import (
	"time"

	"github.com/charmbracelet/harmonica"

	"github.com/taigrr/wireview/pkg/math3d"
	"github.com/taigrr/wireview/pkg/wireframe"
)

// torqueStrength is the angular acceleration, in radians per second squared,
// applied while a rotation key is held.
const torqueStrength = 3.0

// RotationAxis tracks the angular velocity of one axis. A harmonica spring
// pulls the velocity back to zero once the key is released.
type RotationAxis struct {
	Velocity  float64
	velSpring harmonica.Spring
	velAccel  float64
}

// NewRotationAxis creates a critically damped axis for the given frame rate.
func NewRotationAxis(fps int) RotationAxis {
	return RotationAxis{
		velSpring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

// Step returns the angle to turn this frame and decays the velocity.
func (a *RotationAxis) Step() float64 {
	step := a.Velocity
	a.Velocity, a.velAccel = a.velSpring.Update(a.Velocity, a.velAccel, 0)
	return step
}

// Rotator turns every mesh in a registry about its own centre in response to
// held keys: w/s pitch, a/d yaw, q/e roll.
type Rotator struct {
	Pitch, Yaw, Roll RotationAxis

	torque    struct{ pitch, yaw, roll float64 }
	lastFrame time.Time
	now       func() time.Time
}

// NewRotator creates a rotator tuned for fps frames per second.
func NewRotator(fps int) *Rotator {
	return &Rotator{
		Pitch: NewRotationAxis(fps),
		Yaw:   NewRotationAxis(fps),
		Roll:  NewRotationAxis(fps),
		now:   time.Now,
	}
}

// Key is the viewer key hook. Unknown keys are ignored.
func (r *Rotator) Key(key string) {
	switch key {
	case "w", "up":
		r.torque.pitch = -torqueStrength
	case "s", "down":
		r.torque.pitch = torqueStrength
	case "a", "left":
		r.torque.yaw = -torqueStrength
	case "d", "right":
		r.torque.yaw = torqueStrength
	case "q":
		r.torque.roll = -torqueStrength
	case "e":
		r.torque.roll = torqueStrength
	}
}

// Update applies one frame of rotation to every mesh in reg.
func (r *Rotator) Update(reg *wireframe.Registry) {
	now := r.now()
	dt := 0.0
	if !r.lastFrame.IsZero() {
		dt = min(now.Sub(r.lastFrame).Seconds(), 0.1)
	}
	r.lastFrame = now

	r.Pitch.Velocity += r.torque.pitch * dt
	r.Yaw.Velocity += r.torque.yaw * dt
	r.Roll.Velocity += r.torque.roll * dt
	// Key hooks only fire while a key is held, so torque lasts one frame.
	r.torque = struct{ pitch, yaw, roll float64 }{}

	pitch, yaw, roll := r.Pitch.Step(), r.Yaw.Step(), r.Roll.Step()
	if pitch == 0 && yaw == 0 && roll == 0 {
		return
	}

	rot := math3d.RotateX(pitch).Mul(math3d.RotateY(yaw)).Mul(math3d.RotateZ(roll))
	for _, e := range reg.Entries() {
		e.Mesh.Transform(math3d.About(e.Mesh.Centre(), rot))
	}
}
