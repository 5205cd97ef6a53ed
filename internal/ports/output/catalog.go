package output

import "helpinject/internal/domain/entities"

// Catalog resolves the translation table of a language.
type Catalog interface {
	Lookup(code entities.LanguageCode) (entities.Table, bool)
	Languages() []entities.LanguageCode
}
