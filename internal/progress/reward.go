package progress

import (
	"github.com/kids-planet/backend/internal/catalog"
	"github.com/kids-planet/backend/internal/models"
)

// Level derives the level from a star total. It is the only place the
// stars→level mapping lives; nothing else writes Level.
func Level(stars int) int {
	return stars/100 + 1
}

// GrantStars returns a copy of p with amount stars added and the level
// recomputed. Pure — the caller persists.
func GrantStars(p models.UserProgress, amount int) models.UserProgress {
	p.Stars += amount
	p.Level = Level(p.Stars)
	return p
}

// UnlockBadge adds badgeID to the badge set. Already-present and unknown
// ids are inert: the input comes back unchanged with unlocked=false, so a
// repeat unlock never re-triggers the celebration.
func UnlockBadge(p models.UserProgress, badgeID string) (models.UserProgress, bool) {
	if _, ok := catalog.BadgeByID(badgeID); !ok {
		return p, false
	}
	for _, b := range p.Badges {
		if b == badgeID {
			return p, false
		}
	}
	badges := make([]string, len(p.Badges), len(p.Badges)+1)
	copy(badges, p.Badges)
	p.Badges = append(badges, badgeID)
	return p, true
}

// CompleteTask records taskID as done and grants its star award. Task ids
// are append-only; repeating a task still awards stars but does not
// duplicate the id.
func CompleteTask(p models.UserProgress, taskID string, stars int) models.UserProgress {
	done := false
	for _, t := range p.CompletedTasks {
		if t == taskID {
			done = true
			break
		}
	}
	if !done {
		tasks := make([]string, len(p.CompletedTasks), len(p.CompletedTasks)+1)
		copy(tasks, p.CompletedTasks)
		p.CompletedTasks = append(tasks, taskID)
	}
	return GrantStars(p, stars)
}
