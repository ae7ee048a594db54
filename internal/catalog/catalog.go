// Package catalog holds the static badge, avatar, and theme catalogs.
// The catalogs are fixed at build time; runtime state only records which
// ids a user has unlocked or selected.
package catalog

// Badge is a one-time achievement definition.
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

var Badges = []Badge{
	{ID: "science_whiz", Name: "Science Whiz", Icon: "🧪", Description: "Won a Daily Challenge", Color: "#4ECDC4"},
	{ID: "quest_master", Name: "Quest Master", Icon: "👑", Description: "Completed 5 Daily Quests", Color: "#FF6B6B"},
	{ID: "super_star", Name: "Super Star", Icon: "⭐", Description: "Reached Level 10", Color: "#FFE66D"},
}

func BadgeByID(id string) (Badge, bool) {
	for _, b := range Badges {
		if b.ID == id {
			return b, true
		}
	}
	return Badge{}, false
}

// Avatar is a selectable avatar with a level threshold. Level gates
// selection only; an already-selected avatar is never re-validated.
type Avatar struct {
	ID         int    `json:"id"`
	Icon       string `json:"icon"`
	Background string `json:"bg"`
	Level      int    `json:"level"`
}

var Avatars = []Avatar{
	// Level 1 starters
	{ID: 0, Icon: "👦", Background: "#FF6B6B", Level: 1},
	{ID: 1, Icon: "👧", Background: "#4ECDC4", Level: 1},
	{ID: 2, Icon: "🐶", Background: "#A8E6CF", Level: 1},
	{ID: 3, Icon: "🐱", Background: "#FF9FF3", Level: 1},

	// Level 2 unlocks
	{ID: 4, Icon: "🦊", Background: "#D4A373", Level: 2},
	{ID: 5, Icon: "🐼", Background: "#F7F7F7", Level: 2},
	{ID: 6, Icon: "🦁", Background: "#FFD93D", Level: 2},
	{ID: 7, Icon: "🐯", Background: "#FF6B6B", Level: 2},

	// Level 3 unlocks
	{ID: 8, Icon: "🤖", Background: "#292F36", Level: 3},
	{ID: 9, Icon: "👽", Background: "#6C5CE7", Level: 3},
	{ID: 10, Icon: "🦸", Background: "#4ECDC4", Level: 3},
	{ID: 11, Icon: "🥷", Background: "#2D3436", Level: 3},

	// Level 5 masters
	{ID: 12, Icon: "🦄", Background: "#FF9FF3", Level: 5},
	{ID: 13, Icon: "🐉", Background: "#00B894", Level: 5},
	{ID: 14, Icon: "👑", Background: "#FDCB6E", Level: 5},
	{ID: 15, Icon: "🚀", Background: "#0984E3", Level: 5},
}

func AvatarByID(id int) (Avatar, bool) {
	for _, a := range Avatars {
		if a.ID == id {
			return a, true
		}
	}
	return Avatar{}, false
}

// ThemeColors is the palette a client applies for a theme.
type ThemeColors struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
	Dark      string `json:"dark"`
	Light     string `json:"light"`
	Purple    string `json:"purple"`
}

// Theme has no unlock threshold; every catalog theme is always selectable.
type Theme struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Icon   string      `json:"icon"`
	Colors ThemeColors `json:"colors"`
}

// DefaultThemeID is the theme applied to new users and to snapshots saved
// before themes existed.
const DefaultThemeID = "default"

var Themes = []Theme{
	{
		ID: DefaultThemeID, Name: "Mars Mission", Icon: "🪐",
		Colors: ThemeColors{Primary: "#FF6B6B", Secondary: "#4ECDC4", Accent: "#FFE66D", Dark: "#292F36", Light: "#F7FFF7", Purple: "#6C5CE7"},
	},
	{
		ID: "ocean", Name: "Ocean Splash", Icon: "🐬",
		Colors: ThemeColors{Primary: "#0096C7", Secondary: "#48CAE4", Accent: "#ADE8F4", Dark: "#023E8A", Light: "#F0F8FF", Purple: "#0077B6"},
	},
	{
		ID: "jungle", Name: "Jungle Safari", Icon: "🦁",
		Colors: ThemeColors{Primary: "#588157", Secondary: "#F4A261", Accent: "#E9C46A", Dark: "#3A5A40", Light: "#DAD7CD", Purple: "#A3B18A"},
	},
	{
		ID: "candy", Name: "Candy Land", Icon: "🦄",
		Colors: ThemeColors{Primary: "#FF8FAB", Secondary: "#FFC2D1", Accent: "#FFE5EC", Dark: "#FB6F92", Light: "#FFF0F3", Purple: "#C1121F"},
	},
}

func ThemeByID(id string) (Theme, bool) {
	for _, t := range Themes {
		if t.ID == id {
			return t, true
		}
	}
	return Theme{}, false
}
