package progress

import "github.com/kids-planet/backend/internal/models"

// ToggleFavorite removes the story if one with the same title is already
// saved, otherwise appends it. Title is the dedup key — two generated
// stories sharing a title collide — and the order of untouched entries is
// preserved.
func ToggleFavorite(p models.UserProgress, story models.Story) models.UserProgress {
	exists := false
	for _, f := range p.Favorites {
		if f.Title == story.Title {
			exists = true
			break
		}
	}

	if exists {
		kept := make([]models.Story, 0, len(p.Favorites))
		for _, f := range p.Favorites {
			if f.Title != story.Title {
				kept = append(kept, f)
			}
		}
		p.Favorites = kept
		return p
	}

	favorites := make([]models.Story, len(p.Favorites), len(p.Favorites)+1)
	copy(favorites, p.Favorites)
	p.Favorites = append(favorites, story)
	return p
}
