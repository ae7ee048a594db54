package progress

import (
	"github.com/kids-planet/backend/internal/catalog"
	"github.com/kids-planet/backend/internal/models"
)

// Selection rejection reasons surfaced to the caller as advisory feedback.
const (
	ReasonLocked  = "locked"
	ReasonUnknown = "unknown"
)

// IsAvatarUnlocked reports whether a level satisfies an avatar's threshold.
func IsAvatarUnlocked(level int, a catalog.Avatar) bool {
	return level >= a.Level
}

// SelectAvatar applies an avatar selection if the catalog entry exists and
// its level threshold is met. A rejected selection is a no-op with a
// reason, never an error. Themes have no analogous gate.
func SelectAvatar(p models.UserProgress, avatarID int) (models.UserProgress, bool, string) {
	a, ok := catalog.AvatarByID(avatarID)
	if !ok {
		return p, false, ReasonUnknown
	}
	if !IsAvatarUnlocked(p.Level, a) {
		return p, false, ReasonLocked
	}
	p.AvatarID = avatarID
	return p, true, ""
}

// SelectTheme applies a theme selection. Any catalog theme is selectable
// regardless of level; unknown ids are inert.
func SelectTheme(p models.UserProgress, themeID string) (models.UserProgress, bool, string) {
	if _, ok := catalog.ThemeByID(themeID); !ok {
		return p, false, ReasonUnknown
	}
	p.ThemeID = themeID
	return p, true, ""
}
