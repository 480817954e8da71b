// Package motivation добывает цитату дня и картинку дня со сторонних
// сайтов. Вся эта механика best-effort: структура чужого HTML нам не
// принадлежит, поэтому наружу торчит только интерфейс Source, а любой
// сбой превращается в запасную цитату на стороне хендлера.
package motivation

type Quote struct {
	Text   string
	Author string
}

type Source interface {
	QuoteOfTheDay() (Quote, error)
	// ImageOfTheDay возвращает ссылку на картинку, не повторявшуюся
	// в предыдущие дни (журнал показанных ссылок)
	ImageOfTheDay() (string, error)
	// BackgroundImage возвращает случайную фоновую картинку
	BackgroundImage() (string, error)
}

// StockQuote показывается, когда все источники цитат недоступны
var StockQuote = Quote{
	Text:   "The best way to get started is to quit talking and begin doing.",
	Author: "Walt Disney",
}
