package field

import "strconv"

// Symbol names one discrete input key. Printable keys are named by the
// rune they produce, keypad digits use the bracketed "[5]" form and control
// keys use lower-case words.
type Symbol string

const (
	SymEnter       Symbol = "enter"
	SymBackspace   Symbol = "backspace"
	SymLeft        Symbol = "left"
	SymRight       Symbol = "right"
	SymComma       Symbol = ","
	SymMinus       Symbol = "-"
	SymKeypadMinus Symbol = "[-]"
)

// Keypad returns the keypad symbol for digit d.
func Keypad(d int) Symbol {
	return Symbol("[" + strconv.Itoa(d) + "]")
}

// AllowList is the set of symbols a field accepts. An empty set accepts
// everything.
type AllowList map[Symbol]struct{}

// Allow builds an AllowList from syms.
func Allow(syms ...Symbol) AllowList {
	a := make(AllowList, len(syms))
	for _, s := range syms {
		a[s] = struct{}{}
	}
	return a
}

// Permits reports whether s may be handled by a field using this list.
func (a AllowList) Permits(s Symbol) bool {
	if len(a) == 0 {
		return true
	}
	_, ok := a[s]
	return ok
}

func digits() []Symbol {
	syms := make([]Symbol, 0, 20)
	for d := 0; d <= 9; d++ {
		syms = append(syms, Symbol(strconv.Itoa(d)), Keypad(d))
	}
	return syms
}

// NumericList accepts comma separated signed integers.
func NumericList() AllowList {
	return Allow(append(digits(), SymComma, SymMinus, SymKeypadMinus, SymBackspace, SymEnter, SymLeft, SymRight)...)
}

// TargetList accepts a single signed integer.
func TargetList() AllowList {
	return Allow(append(digits(), SymMinus, SymKeypadMinus, SymBackspace, SymEnter, SymLeft, SymRight)...)
}
