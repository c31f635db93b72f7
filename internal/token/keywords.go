package token

// Закрытый набор ключевых слов. Пока только управление условиями в духе
// классических shell: if/fi. Набор расширяется здесь и только здесь.
var keywords = map[string]Kind{
	"if": KwIf,
	"fi": KwFi,
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Ключевые слова регистрозависимые — только lowercase версии распознаются.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
