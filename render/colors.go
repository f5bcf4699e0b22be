package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255) // White
	RgbStatusBg   = tcell.NewRGBColor(40, 42, 58)    // Slightly lifted from background

	RgbPlayer      = tcell.NewRGBColor(100, 150, 255) // Normal Blue
	RgbPlayerGun   = tcell.NewRGBColor(140, 190, 255) // Bright Blue
	RgbEnemy       = tcell.NewRGBColor(255, 80, 80)   // Normal Red
	RgbEnemyGun    = tcell.NewRGBColor(255, 120, 120) // Bright Red
	RgbEnemyRammer = tcell.NewRGBColor(255, 165, 0)   // Orange for forward-moving enemies
	RgbBoss        = tcell.NewRGBColor(200, 80, 220)  // Violet
	RgbBossGun     = tcell.NewRGBColor(230, 140, 255)
	RgbHealthText  = tcell.NewRGBColor(255, 255, 255)

	RgbShotFriendly = tcell.NewRGBColor(255, 255, 0)   // Bright Yellow
	RgbShotHostile  = tcell.NewRGBColor(255, 120, 120) // Bright Red

	RgbBurstReady   = tcell.NewRGBColor(0, 200, 0)   // Normal Green
	RgbBurstSpent   = tcell.NewRGBColor(80, 80, 80)  // Dim gray
	RgbBurstRecover = tcell.NewRGBColor(200, 50, 50) // Red while recovering

	RgbBanner   = tcell.NewRGBColor(255, 0, 0)     // Error Red
	RgbBannerBg = tcell.NewRGBColor(0, 0, 0)       // Black
	RgbPaused   = tcell.NewRGBColor(255, 192, 203) // Pink
	RgbDebug    = tcell.NewRGBColor(180, 180, 180) // Brighter gray
)

// actorColors returns body and gun colors for a kind
func actorColors(v actorKind) (body, gun tcell.Color) {
	switch v {
	case kindPlayer:
		return RgbPlayer, RgbPlayerGun
	case kindBoss:
		return RgbBoss, RgbBossGun
	case kindRammer:
		return RgbEnemyRammer, RgbEnemyGun
	default:
		return RgbEnemy, RgbEnemyGun
	}
}
