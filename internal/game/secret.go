package game

// Generator produces random secret codes from an injected randomness
// source.
type Generator struct {
	src Source
}

// NewGenerator creates a Generator drawing from src.
//
// Precondition: src must be non-nil.
func NewGenerator(src Source) *Generator {
	if src == nil {
		panic("game: NewGenerator called with nil source")
	}
	return &Generator{src: src}
}

// Generate returns a fresh secret of CodeLength symbols. Each position
// is an independent uniform draw from the palette; repeated colors are
// allowed and common.
//
// Postcondition: len(result) == CodeLength and every element is a valid
// palette symbol.
func (g *Generator) Generate() Code {
	code := make(Code, CodeLength)
	for i := range code {
		code[i] = Symbol(g.src.Intn(PaletteSize))
	}
	return code
}
