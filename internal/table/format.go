package table

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/replit/iotable/internal/util"
)

// kindSpellings lists the accepted column type names for each Kind,
// canonical name first.
var kindSpellings = [...][]string{
	KindBool:    {"bool", "boolean"},
	KindInteger: {"integer", "int"},
	KindFloat:   {"float", "double"},
	KindChar:    {"char"},
	KindText:    {"text", "string"},
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindSpellings) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindSpellings[k][0]
}

// ParseKind returns the Kind named by the given column type. Names
// are case-insensitive.
func ParseKind(name string) (Kind, error) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for k, spellings := range kindSpellings {
		for _, spelling := range spellings {
			if spelling == needle {
				return Kind(k), nil
			}
		}
	}
	return 0, fmt.Errorf("unknown column type %q", name)
}

// KindNames returns the accepted column type names, indexed by Kind.
func KindNames() [][]string {
	names := make([][]string, len(kindSpellings))
	for k, spellings := range kindSpellings {
		names[k] = append([]string(nil), spellings...)
	}
	return names
}

// Format returns the display text of a cell.
func Format(c Cell) string {
	return c.String()
}

func (b Bool) Kind() Kind { return KindBool }
func (i Int) Kind() Kind { return KindInteger }
func (u Uint) Kind() Kind { return KindInteger }
func (f Float) Kind() Kind { return KindFloat }
func (c Char) Kind() Kind { return KindChar }
func (t Text) Kind() Kind { return KindText }

func (Bool) sealed() {}
func (Int) sealed() {}
func (Uint) sealed() {}
func (Float) sealed() {}
func (Char) sealed() {}
func (Text) sealed() {}

func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

func (i Int) String() string {
	return strconv.FormatInt(int64(i), 10)
}

func (u Uint) String() string {
	return strconv.FormatUint(uint64(u), 10)
}

// String renders the value with six fractional digits and then cuts
// the string one character past its last non-'0' character, so a
// single trailing zero survives: 2.5 is "2.50" and 3 is "3.0". A
// value with no trailing zeros is returned whole.
func (f Float) String() string {
	s := strconv.FormatFloat(float64(f), 'f', 6, 64)
	end := strings.LastIndexFunc(s, func(r rune) bool { return r != '0' }) + 2
	if end > len(s) {
		return s
	}
	return s[:end]
}

func (c Char) String() string {
	return string([]byte{byte(c)})
}

func (t Text) String() string {
	return string(t)
}

// CellOf wraps a typed value in the Cell for its kind.
func CellOf[T Value](v T) Cell {
	switch v := any(v).(type) {
	case bool:
		return Bool(v)
	case int:
		return Int(v)
	case int8:
		return Int(v)
	case int16:
		return Int(v)
	case int32:
		return Int(v)
	case int64:
		return Int(v)
	case uint:
		return Uint(v)
	case uint8:
		return Uint(v)
	case uint16:
		return Uint(v)
	case uint32:
		return Uint(v)
	case uint64:
		return Uint(v)
	case uintptr:
		return Uint(v)
	case float32:
		return Float(v)
	case float64:
		return Float(v)
	case Char:
		return v
	case string:
		return Text(v)
	}
	util.Panicf("table: no cell kind for %T", v)
	return nil
}
