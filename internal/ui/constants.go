package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Text fragments
const (
	MiddleDotSeparator = " · "
	QuestPrefix        = "⚔ "
	StreakIcon         = "🔥"
	XPIcon             = "★"
)

// Layout sizing
const (
	AvatarSize        float32 = 56
	AvatarMorphedSize float32 = 72
	NavRailWidth      float32 = 180
	NavRailCollapsedW float32 = 56
	BadgeCornerRadius float32 = 10
	CardCornerRadius  float32 = 20
	CardMinHeight     float32 = 320
	ProgressBarHeight float32 = 20

	DesktopStatColumns = 4
	MobileStatColumns  = 2

	SettingsDialogWidth  float32 = 420
	SettingsDialogHeight float32 = 260
)

// Text sizes for canvas text that does not follow the theme
const (
	InitialsTextSize float32 = 20
	StatValueSize    float32 = 22
)
