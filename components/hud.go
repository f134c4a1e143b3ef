package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// HUDData stores presentation-only state (singleton component).
type HUDData struct {
	Banner         string       // last toggle/mode change, fades out
	BannerAlpha    float32      // 0.0 - 1.0
	BannerTween    *gween.Tween // nil when no banner is showing
	ShowController bool         // raw controller overlay
}

var HUD = donburi.NewComponentType[HUDData]()
