package core

// Kind identifies one of the seven standard pieces.
// Its numeric value is the zero-based color index.
type Kind uint8

const (
	KindI Kind = iota
	KindO
	KindT
	KindL
	KindJ
	KindS
	KindZ
)

// KindCount is the number of catalog entries.
const KindCount = 7

// String returns the piece letter.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindT:
		return "T"
	case KindL:
		return "L"
	case KindJ:
		return "J"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	default:
		return "?"
	}
}

// Cell returns the value written into the grid when a piece of this kind locks.
// It is shifted by one so that zero stays free for Empty.
func (k Kind) Cell() Cell {
	return Cell(k) + 1
}

// Definition is an immutable catalog entry.
type Definition struct {
	Kind Kind
	Mask Mask
}

var definitions = [KindCount]Definition{
	{Kind: KindI, Mask: ParseMask("####")},
	{Kind: KindO, Mask: ParseMask("##", "##")},
	{Kind: KindT, Mask: ParseMask("###", ".#.")},
	{Kind: KindL, Mask: ParseMask("###", "#..")},
	{Kind: KindJ, Mask: ParseMask("###", "..#")},
	{Kind: KindS, Mask: ParseMask("##.", ".##")},
	{Kind: KindZ, Mask: ParseMask(".##", "##.")},
}

// Lookup returns a copy of the definition for k.
// Unknown kinds fall back to the I piece.
func Lookup(k Kind) Definition {
	if int(k) >= KindCount {
		k = KindI
	}
	d := definitions[k]
	return Definition{Kind: d.Kind, Mask: d.Mask.Clone()}
}

// Catalog returns copies of all definitions in Kind order.
func Catalog() []Definition {
	defs := make([]Definition, KindCount)
	for i := range defs {
		defs[i] = Lookup(Kind(i))
	}
	return defs
}
