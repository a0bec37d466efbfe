package knowledge

import "fmt"

// Category groups analytes the way lab reports section them.
type Category string

const (
	Hematology    Category = "hematologia"
	Biochemistry  Category = "bioquimica"
	Electrolytes  Category = "eletrolitos"
	Hormonal      Category = "hormonal"
	Vitamins      Category = "vitaminas"
	Urinalysis    Category = "urinalise"
	Microbiology  Category = "microbiologia"
	Inflammatory  Category = "inflamatorio"
	OtherCategory Category = "outros"
)

var categoryOrder = []Category{
	Hematology, Biochemistry, Electrolytes, Hormonal, Vitamins,
	Urinalysis, Microbiology, Inflammatory, OtherCategory,
}

// Categories returns every known category in report order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, k := range categoryOrder {
		if c == k {
			return true
		}
	}
	return false
}

// ParseCategory accepts a category slug, tolerating case and accents ("Bioquímica").
func ParseCategory(s string) (Category, error) {
	c := Category(Fold(s))
	if !c.Valid() {
		return "", fmt.Errorf("unknown category: %q", s)
	}
	return c, nil
}
