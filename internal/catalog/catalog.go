// Package catalog holds the static artwork collection. It stands in for an
// external catalog service and is read-only: the simulated endpoints filter
// it but never mutate it.
package catalog

import (
	"strings"

	"github.com/artvault/gallery/internal/models"
)

var artworks = []models.Artwork{
	{
		ID:          1,
		Title:       "The Starry Night",
		Artist:      "Vincent van Gogh",
		Year:        1889,
		Style:       "Post-Impressionism",
		Description: "Swirling night sky over Saint-Rémy-de-Provence, painted from the east-facing window of the asylum.",
		Price:       1250,
		Image:       "https://upload.wikimedia.org/wikipedia/commons/thumb/e/ea/Van_Gogh_-_Starry_Night_-_Google_Art_Project.jpg/800px-Van_Gogh_-_Starry_Night_-_Google_Art_Project.jpg",
		InStock:     true,
	},
	{
		ID:          2,
		Title:       "Mona Lisa",
		Artist:      "Leonardo da Vinci",
		Year:        1503,
		Style:       "High Renaissance",
		Description: "Half-length portrait of Lisa Gherardini, famed for the sitter's enigmatic expression.",
		Price:       2500,
		Image:       "https://upload.wikimedia.org/wikipedia/commons/thumb/e/ec/Mona_Lisa%2C_by_Leonardo_da_Vinci%2C_from_C2RMF_retouched.jpg/800px-Mona_Lisa%2C_by_Leonardo_da_Vinci%2C_from_C2RMF_retouched.jpg",
		InStock:     false,
	},
	{
		ID:          3,
		Title:       "The Great Wave off Kanagawa",
		Artist:      "Katsushika Hokusai",
		Year:        1831,
		Style:       "Ukiyo-e",
		Description: "Woodblock print from the Thirty-six Views of Mount Fuji series.",
		Price:       890,
		Image:       "https://upload.wikimedia.org/wikipedia/commons/thumb/a/a5/Tsunami_by_hokusai_19th_century.jpg/800px-Tsunami_by_hokusai_19th_century.jpg",
		InStock:     true,
	},
	{
		ID:          4,
		Title:       "Sunflowers",
		Artist:      "Vincent van Gogh",
		Year:        1888,
		Style:       "Post-Impressionism",
		Description: "One of the Arles sunflower still lifes painted for Gauguin's visit.",
		Price:       980,
		Image:       "https://upload.wikimedia.org/wikipedia/commons/thumb/4/46/Vincent_Willem_van_Gogh_127.jpg/600px-Vincent_Willem_van_Gogh_127.jpg",
		InStock:     true,
	},
	{
		ID:          5,
		Title:       "Vitruvian Man",
		Artist:      "Leonardo da Vinci",
		Year:        1490,
		Style:       "High Renaissance",
		Description: "Pen-and-ink study of ideal human proportions after Vitruvius.",
		Price:       1600,
		Image:       "https://upload.wikimedia.org/wikipedia/commons/thumb/2/22/Da_Vinci_Vitruve_Luc_Viatour.jpg/600px-Da_Vinci_Vitruve_Luc_Viatour.jpg",
		InStock:     false,
	},
	{
		ID:          6,
		Title:       "Fine Wind, Clear Morning",
		Artist:      "Katsushika Hokusai",
		Year:        1830,
		Style:       "Ukiyo-e",
		Description: "Red Fuji at dawn, companion print to The Great Wave.",
		Price:       740,
		Image:       "https://upload.wikimedia.org/wikipedia/commons/thumb/9/96/Red_Fuji_southern_wind_clear_morning.jpg/800px-Red_Fuji_southern_wind_clear_morning.jpg",
		InStock:     true,
	},
}

// All returns a copy of the full collection.
func All() []models.Artwork {
	out := make([]models.Artwork, len(artworks))
	copy(out, artworks)
	return out
}

func ByID(id int64) (models.Artwork, bool) {
	for _, a := range artworks {
		if a.ID == id {
			return a, true
		}
	}
	return models.Artwork{}, false
}

// Filter matches query case-insensitively against title, artist and style.
// An empty query returns everything.
func Filter(query string) []models.Artwork {
	if query == "" {
		return All()
	}
	q := strings.ToLower(query)
	var out []models.Artwork
	for _, a := range artworks {
		if strings.Contains(strings.ToLower(a.Title), q) ||
			strings.Contains(strings.ToLower(a.Artist), q) ||
			strings.Contains(strings.ToLower(a.Style), q) {
			out = append(out, a)
		}
	}
	return out
}
