package extract

// entities is the fixed set of named references understood by the engine.
var entities = map[string]string{
	"quot": `"`,
	"lt":   "<",
	"gt":   ">",
	"amp":  "&",
}

// DecodeEntity returns the literal text for a named reference.
// It returns false for any name outside the fixed set; such references
// are dropped rather than passed through.
func DecodeEntity(name string) (string, bool) {
	s, ok := entities[name]
	return s, ok
}
