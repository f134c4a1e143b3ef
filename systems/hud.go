package systems

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/automoto/gamepad-gun/components"
	cfg "github.com/automoto/gamepad-gun/config"
	"github.com/automoto/gamepad-gun/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudPanelWidth = 190
	hudSwatchSize = 14
)

// GetOrCreateHUD returns the singleton HUD component, creating if needed
func GetOrCreateHUD(ecs *ecs.ECS) *components.HUDData {
	if _, ok := components.HUD.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.HUD))
		components.HUD.SetValue(ent, components.HUDData{
			ShowController: cfg.Debug.ShowController,
		})
	}

	ent, _ := components.HUD.First(ecs.World)
	return components.HUD.Get(ent)
}

// SubscribeHUD shows a banner whenever a toggle or the bullet mode changes.
func SubscribeHUD(ecs *ecs.ECS) {
	components.ToggleChanged.Subscribe(ecs.World, func(w donburi.World, ev components.ToggleChangedEvent) {
		showBanner(ecs, fmt.Sprintf("P%d %s %s", ev.Slot+1, titleCase(ev.Toggle.String()), onOff(ev.Enabled)))
	})
	components.ModeChanged.Subscribe(ecs.World, func(w donburi.World, ev components.ModeChangedEvent) {
		showBanner(ecs, fmt.Sprintf("P%d %s bullets", ev.Slot+1, titleCase(ev.Mode.String())))
	})
	components.ControllerConnection.Subscribe(ecs.World, func(w donburi.World, ev components.ControllerConnectionEvent) {
		state := "disconnected"
		if ev.Connected {
			state = "connected"
		}
		showBanner(ecs, fmt.Sprintf("P%d controller %s", ev.Slot+1, state))
	})
}

func showBanner(ecs *ecs.ECS, msg string) {
	hud := GetOrCreateHUD(ecs)
	hud.Banner = msg
	hud.BannerAlpha = 1
	hud.BannerTween = gween.New(1, 0, float32(cfg.UI.BannerFrames), ease.InQuad)
}

// UpdateHUD fades the banner.
func UpdateHUD(ecs *ecs.ECS) {
	hud := GetOrCreateHUD(ecs)
	updateBanner(hud)
}

// updateBanner advances the fade by one frame.
func updateBanner(hud *components.HUDData) {
	if hud.BannerTween == nil {
		return
	}
	alpha, done := hud.BannerTween.Update(1)
	hud.BannerAlpha = alpha
	if done {
		hud.Banner = ""
		hud.BannerAlpha = 0
		hud.BannerTween = nil
	}
}

// DrawHUD renders one status panel per player plus the fading banner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	x := float32(cfg.UI.Margin)

	components.Controller.Each(ecs.World, func(e *donburi.Entry) {
		drawStatusPanel(screen, e, x)
		x += hudPanelWidth + float32(cfg.UI.Margin)
	})

	hud := GetOrCreateHUD(ecs)
	if hud.Banner == "" {
		return
	}
	face := fonts.HUDBanner.Get()
	bounds := text.BoundString(face, hud.Banner)
	bx := (screen.Bounds().Dx() - bounds.Dx()) / 2
	by := screen.Bounds().Dy() / 5
	c := cfg.UI.TextColor
	c.A = uint8(float32(c.A) * hud.BannerAlpha)
	text.Draw(screen, hud.Banner, face, bx, by, c)
}

// drawStatusPanel mirrors the controller: fire button, trigger pressure,
// toggles and bullet color.
func drawStatusPanel(screen *ebiten.Image, e *donburi.Entry, x float32) {
	c := components.Controller.Get(e)
	t := components.Toggles.Get(e)
	w := components.Weapon.Get(e)

	lines := statusLines(c, t, w)
	lh := float32(cfg.UI.LineHeight)
	y := float32(cfg.UI.Margin)
	height := lh*float32(len(lines)+1) + lh/2

	vector.FillRect(screen, x, y, hudPanelWidth, height, cfg.UI.BackdropColor, false)

	face := fonts.HUD.Get()
	for i, line := range lines {
		text.Draw(screen, line, face, int(x)+8, int(y+lh*float32(i+1)), cfg.UI.TextColor)
	}

	// Bullet color swatch after the last line
	sy := y + lh*float32(len(lines)) + lh/4
	text.Draw(screen, "Bullet", face, int(x)+8, int(sy+hudSwatchSize), cfg.UI.TextColor)
	rgb := cfg.BulletColors[w.Mode]
	vector.FillRect(screen, x+100, sy+2, hudSwatchSize, hudSwatchSize, color.RGBA{rgb[0], rgb[1], rgb[2], 255}, false)
}

// statusLines returns the panel text for one player.
func statusLines(c *components.ControllerData, t *components.TogglesData, w *components.WeaponData) []string {
	title := fmt.Sprintf("P%d", c.Slot+1)
	if !c.Connected {
		return []string{title + " (no controller)"}
	}

	fire := "○"
	if c.Pressed(cfg.Button(cfg.ActionFireSingle)) {
		fire = "●"
	}
	trigger := int(c.Snapshot.Value(cfg.Button(cfg.ActionFireAuto)) * 100)

	return []string{
		title,
		"Fire " + fire,
		fmt.Sprintf("R2 %d%%", trigger),
		"Vibration " + onOff(t.VibrationEnabled),
		"Sound " + onOff(t.SoundEnabled),
		fmt.Sprintf("Shots %d", w.ShotsFired),
	}
}

func onOff(v bool) string {
	if v {
		return "On"
	}
	return "Off"
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
