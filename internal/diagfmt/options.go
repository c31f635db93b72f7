package diagfmt

// PrettyOpts управляет человекочитаемым выводом диагностик.
type PrettyOpts struct {
	// Color включает раскраску severity.
	Color bool
	// Context — сколько строк исходника показать перед строкой с ошибкой.
	Context int
}
