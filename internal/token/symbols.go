package token

// Фиксированный allow-list двухсимвольных операторов. Трёхсимвольные
// комбинации (<<< и т.п.) сознательно не поддерживаются.
var twoCharSymbols = map[[2]byte]struct{}{
	{'>', '>'}: {},
	{'<', '<'}: {},
	{'=', '='}: {},
	{'!', '='}: {},
	{'<', '='}: {},
	{'>', '='}: {},
	{'&', '&'}: {},
	{'|', '|'}: {},
	{'+', '='}: {},
	{'-', '='}: {},
}

// LookupSymbol2 reports whether the two bytes form a recognized
// two-character operator.
func LookupSymbol2(a, b byte) bool {
	_, ok := twoCharSymbols[[2]byte{a, b}]
	return ok
}
