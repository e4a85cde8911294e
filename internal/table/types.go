package table

// Table represents a set of simple tabular data. Tables have a list
// of header cells and a list of rows. Each row must be the same
// length as the list of header cells, and every cell in a column has
// the same Kind. Construct a table with New, add rows with AddRow,
// and render it with String or WriteTo.
type Table struct {
	headers []string
	kinds   []Kind
	rows    [][]Cell
}

// Kind identifies which formatting rule applies to a cell.
type Kind int

// Values for Kind.
const (
	// true or false
	KindBool Kind = iota

	// signed and unsigned integers of any width
	KindInteger

	// float32 and float64
	KindFloat

	// a single byte
	KindChar

	// arbitrary strings
	KindText
)

// Cell is one value in a table row. The set of implementations is
// closed: Bool, Int, Uint, Float, Char and Text.
type Cell interface {
	Kind() Kind
	String() string

	// sealed keeps other packages from adding kinds.
	sealed()
}

// Bool is a boolean cell.
type Bool bool

// Int is a signed integer cell.
type Int int64

// Uint is an unsigned integer cell.
type Uint uint64

// Float is a floating-point cell.
type Float float64

// Char is a single byte. It is a distinct type so that character
// columns can be told apart from uint8 columns.
type Char byte

// Text is a string cell.
type Text string

// Value is the set of Go types that typed tables accept as column
// types.
type Value interface {
	bool |
		int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 | uintptr |
		float32 | float64 |
		Char | string
}
