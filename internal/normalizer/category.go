package normalizer

import (
	"strings"

	"catalogclean/internal/models"
)

type categoryRule struct {
	category string
	keywords []string
}

// First matching rule wins.
var categoryRules = []categoryRule{
	{models.CategoryKids, []string{"children", "kids"}},
	{models.CategoryDocumentary, []string{"documentary"}},
	{models.CategoryComedy, []string{"comedy"}},
	{models.CategoryAction, []string{"action"}},
	{models.CategoryRomance, []string{"romance"}},
	{models.CategoryHorror, []string{"horror"}},
	{models.CategoryDrama, []string{"drama"}},
}

// Categorize maps a main genre to a content category by case-insensitive
// keyword match. A nil genre, or one matching no keyword, is Other.
func Categorize(mainGenre *string) string {
	if mainGenre == nil {
		return models.CategoryOther
	}

	genre := strings.ToLower(*mainGenre)

	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(genre, kw) {
				return rule.category
			}
		}
	}

	return models.CategoryOther
}
