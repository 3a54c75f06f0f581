package domain

// CatalogEntry is a static product definition. The catalog is read-only
// after seeding; it drives inventory initialization for each team.
type CatalogEntry struct {
	SKU          string
	Name         string
	Category     string
	InitialStock int
}
