package core

// Size describes the dimensions of a grid.
type Size struct {
	Rows int
	Cols int
}

// Seeder produces a fresh grid of the requested size. Seeders that do not
// need randomness ignore rng.
type Seeder func(rng *RNG, size Size) *Grid

var seeders = map[string]Seeder{}

// RegisterSeeder adds a grid seeder under the provided reset mode name.
func RegisterSeeder(name string, s Seeder) {
	if name == "" || s == nil {
		return
	}
	seeders[name] = s
}

// Seeders exposes the registry of available reset modes.
func Seeders() map[string]Seeder {
	return seeders
}
