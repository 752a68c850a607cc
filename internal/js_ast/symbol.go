package js_ast

// Ref is a compact handle into a Symbol table. esbuild's own Ref
// carries a SourceIndex because its symbol table
// spans a whole bundle; this front-end parses one file at a time, so a
// bare inner index is enough to keep symbols stable for the parse's
// lifetime while staying cheap to copy and compare.
type Ref struct {
	InnerIndex uint32
}

// InvalidRef is returned by Interner.Get for a string that was never
// interned.
var InvalidRef = Ref{InnerIndex: 0xFFFFFFFF}

func (r Ref) IsValid() bool { return r != InvalidRef }

type Symbol struct {
	// OriginalName is what the parser saw in the source. Renaming,
	// minification, and other printer-side concerns are not handled
	// here; nothing about this is ever mutated once the symbol is
	// interned.
	OriginalName string
}

// Interner deduplicates identifier and literal-key strings into Refs.
// It is created once per parse, mutated in place as new identifiers
// are discovered, and is not safe to share between concurrent parses.
type Interner struct {
	symbols []Symbol
	byName  map[string]Ref
}

func NewInterner() *Interner {
	return &Interner{byName: make(map[string]Ref)}
}

// Intern returns the existing Ref for s if one was already allocated,
// or allocates and returns a fresh one. Equal strings always yield
// equal Refs.
func (in *Interner) Intern(s string) Ref {
	if ref, ok := in.byName[s]; ok {
		return ref
	}
	ref := Ref{InnerIndex: uint32(len(in.symbols))}
	in.symbols = append(in.symbols, Symbol{OriginalName: s})
	in.byName[s] = ref
	return ref
}

// Get is a non-inserting query: it returns InvalidRef if s has never
// been interned.
func (in *Interner) Get(s string) (Ref, bool) {
	ref, ok := in.byName[s]
	if !ok {
		return InvalidRef, false
	}
	return ref, true
}

// Resolve returns the original string for ref. It panics if ref's index
// is out of range for this Interner (InvalidRef included), since that is
// a programmer error, not a recoverable parse condition.
func (in *Interner) Resolve(ref Ref) string {
	return in.symbols[ref.InnerIndex].OriginalName
}

// Len reports how many distinct strings have been interned so far.
func (in *Interner) Len() int { return len(in.symbols) }
