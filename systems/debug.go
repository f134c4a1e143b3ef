package systems

import (
	"fmt"
	"strings"

	"github.com/automoto/gamepad-gun/components"
	cfg "github.com/automoto/gamepad-gun/config"
	"github.com/automoto/gamepad-gun/fonts"
	"github.com/automoto/gamepad-gun/shared/controller"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const debugPanelWidth = 300

// DrawControllerState renders every axis and button of each slot's last
// snapshot, bottom-left.
func DrawControllerState(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateHUD(ecs).ShowController {
		return
	}

	face := fonts.Mono.Get()
	lh := float32(cfg.UI.LineHeight)
	x := float32(cfg.UI.Margin)

	components.Controller.Each(ecs.World, func(e *donburi.Entry) {
		c := components.Controller.Get(e)
		lines := controllerLines(c.Slot, c.Connected, c.Snapshot)

		height := lh * float32(len(lines)+1)
		y := float32(screen.Bounds().Dy()) - height - float32(cfg.UI.Margin)
		vector.FillRect(screen, x, y, debugPanelWidth, height, cfg.UI.BackdropColor, false)
		for i, line := range lines {
			text.Draw(screen, line, face, int(x)+8, int(y+lh*float32(i+1)), cfg.UI.TextColor)
		}
		x += debugPanelWidth + float32(cfg.UI.Margin)
	})
}

// controllerLines formats a snapshot, four entries per line.
func controllerLines(slot int, connected bool, snap controller.Snapshot) []string {
	state := "connected"
	if !connected {
		state = "disconnected"
	}
	lines := []string{fmt.Sprintf("Slot %d %s", slot, state)}

	var row []string
	flush := func() {
		if len(row) > 0 {
			lines = append(lines, strings.Join(row, "  "))
			row = row[:0]
		}
	}

	for i, v := range snap.Axes {
		row = append(row, fmt.Sprintf("a%d %+.2f", i, v))
		if len(row) == 4 {
			flush()
		}
	}
	flush()

	for i, b := range snap.Buttons {
		mark := " "
		if b.Pressed {
			mark = "*"
		}
		row = append(row, fmt.Sprintf("b%-2d%s%.2f", i, mark, b.Value))
		if len(row) == 4 {
			flush()
		}
	}
	flush()

	return lines
}
