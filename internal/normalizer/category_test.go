package normalizer

import (
	"testing"

	"catalogclean/internal/models"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		genre string
		want  string
	}{
		{"Children & Family Movies", models.CategoryKids},
		{"Kids' TV", models.CategoryKids},
		{"Documentaries", models.CategoryOther},
		{"Docuseries", models.CategoryOther},
		{"Documentary Films", models.CategoryDocumentary},
		{"Stand-Up Comedy", models.CategoryComedy},
		{"TV Comedies", models.CategoryOther},
		{"Action & Adventure", models.CategoryAction},
		{"Romance Movies", models.CategoryRomance},
		{"Romantic TV Shows", models.CategoryOther},
		{"Horror Movies", models.CategoryHorror},
		{"Dramas", models.CategoryDrama},
		{"TV Dramas", models.CategoryDrama},
		{"International Movies", models.CategoryOther},
		{"Comedy Drama", models.CategoryComedy},
		{"Kids Horror", models.CategoryKids},
		{"ACTION", models.CategoryAction},
		{"", models.CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.genre, func(t *testing.T) {
			genre := tt.genre
			if got := Categorize(&genre); got != tt.want {
				t.Errorf("Categorize(%q) = %s, want %s", tt.genre, got, tt.want)
			}
		})
	}
}

func TestCategorize_Nil(t *testing.T) {
	if got := Categorize(nil); got != models.CategoryOther {
		t.Errorf("Categorize(nil) = %s, want Other", got)
	}
}
