package systems

import (
	"image/color"
	"math"

	"github.com/automoto/gamepad-gun/components"
	cfg "github.com/automoto/gamepad-gun/config"
	"github.com/automoto/gamepad-gun/shared/gamemath"
	"github.com/automoto/gamepad-gun/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	gridSpacing   = 5.0
	lineSegment   = 1.0 // long lines are split so a partly visible line still draws
	playerLength  = 1.0
	playerSpan    = 0.8
	minBulletSize = 1.5
)

// projector maps world points to screen pixels for one camera.
type projector struct {
	mvp    mgl64.Mat4
	width  float64
	height float64
	focal  float64 // pixels per unit at distance 1
}

func newProjector(cam gamemath.CameraPose, width, height int) projector {
	w, h := float64(width), float64(height)
	fovy := mgl64.DegToRad(cfg.Camera.FOV)
	proj := mgl64.Perspective(fovy, w/h, cfg.Camera.Near, cfg.Camera.Far)
	return projector{
		mvp:    proj.Mul4(cam.View()),
		width:  w,
		height: h,
		focal:  h / 2 / math.Tan(fovy/2),
	}
}

// project returns the screen position of p and its depth, or false when p is
// behind the near plane.
func (pr projector) project(p mgl64.Vec3) (x, y, depth float64, ok bool) {
	clip := pr.mvp.Mul4x1(p.Vec4(1))
	w := clip.W()
	if w < cfg.Camera.Near {
		return 0, 0, 0, false
	}
	ndcX, ndcY := clip.X()/w, clip.Y()/w
	x = (ndcX + 1) / 2 * pr.width
	y = (1 - ndcY) / 2 * pr.height
	return x, y, w, true
}

// line draws a world-space segment, skipping pieces behind the camera.
func (pr projector) line(screen *ebiten.Image, a, b mgl64.Vec3, clr color.Color) {
	n := int(math.Ceil(b.Sub(a).Len() / lineSegment))
	if n < 1 {
		n = 1
	}
	step := b.Sub(a).Mul(1 / float64(n))
	for i := 0; i < n; i++ {
		p0 := a.Add(step.Mul(float64(i)))
		p1 := p0.Add(step)
		x0, y0, _, ok0 := pr.project(p0)
		x1, y1, _, ok1 := pr.project(p1)
		if !ok0 || !ok1 {
			continue
		}
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, clr, false)
	}
}

// DrawWorld renders the ground grid, hills, players and projectiles from the
// first camera's point of view.
func DrawWorld(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.GroundColor)

	camera, ok := GetCamera(ecs)
	if !ok {
		return
	}
	pr := newProjector(camera.CameraPose, screen.Bounds().Dx(), screen.Bounds().Dy())

	drawGrid(screen, pr)

	components.Scenery.Each(ecs.World, func(e *donburi.Entry) {
		drawBox(screen, pr, components.Scenery.Get(e).Box, cfg.UI.HillColor)
	})

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		drawPlayer(screen, pr, components.Transform.Get(e).Pose)
	})

	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		pos := components.Transform.Get(e).Position
		mode := components.Projectile.Get(e).Mode
		drawProjectile(screen, pr, pos, mode)
	})
}

func drawGrid(screen *ebiten.Image, pr projector) {
	bound := cfg.World.Bound
	for v := -bound; v <= bound; v += gridSpacing {
		pr.line(screen, mgl64.Vec3{v, 0, -bound}, mgl64.Vec3{v, 0, bound}, cfg.UI.GridColor)
		pr.line(screen, mgl64.Vec3{-bound, 0, v}, mgl64.Vec3{bound, 0, v}, cfg.UI.GridColor)
	}
}

// drawBox draws the twelve edges of a scenery box.
func drawBox(screen *ebiten.Image, pr projector, b cfg.Box, clr color.Color) {
	hw, hh, hd := b.W/2, b.H/2, b.D/2
	var corners [8]mgl64.Vec3
	for i := range corners {
		dx, dy, dz := -hw, -hh, -hd
		if i&1 != 0 {
			dx = hw
		}
		if i&2 != 0 {
			dy = hh
		}
		if i&4 != 0 {
			dz = hd
		}
		corners[i] = mgl64.Vec3{b.X + dx, b.Y + dy, b.Z + dz}
	}
	for i := range corners {
		for _, bit := range []int{1, 2, 4} {
			if i&bit == 0 {
				pr.line(screen, corners[i], corners[i|bit], clr)
			}
		}
	}
}

// drawPlayer draws the aircraft as an arrow pointing along its heading.
func drawPlayer(screen *ebiten.Image, pr projector, pose gamemath.Pose) {
	heading := gamemath.Heading(pose.Yaw)
	side := heading.Cross(gamemath.Up).Normalize()

	nose := pose.Position.Add(heading.Mul(playerLength / 2))
	tail := pose.Position.Sub(heading.Mul(playerLength / 2))
	left := tail.Add(side.Mul(playerSpan / 2))
	right := tail.Sub(side.Mul(playerSpan / 2))

	clr := cfg.UI.PlayerColor
	pr.line(screen, nose, left, clr)
	pr.line(screen, left, pose.Position, clr)
	pr.line(screen, pose.Position, right, clr)
	pr.line(screen, right, nose, clr)
}

func drawProjectile(screen *ebiten.Image, pr projector, pos mgl64.Vec3, mode cfg.BulletMode) {
	x, y, depth, ok := pr.project(pos)
	if !ok {
		return
	}
	r := cfg.Projectile.Radius * pr.focal / depth
	r = math.Max(r, minBulletSize)

	rgb := cfg.BulletColors[mode]
	vector.FillCircle(screen, float32(x), float32(y), float32(r), color.RGBA{rgb[0], rgb[1], rgb[2], 255}, true)
}
