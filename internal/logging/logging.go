package logging

//go:generate mockgen -source=logging.go -destination=mocks/logger.go -package=mocks -mock_names Logger=LoggerMock

// Logger абстракция предназначенная для логирования в строго определённых ситуациях.
// Реализация логирования должна делаться пользователями библиотеки.
type Logger interface {
	// ListInsertRejected вставка в список на позицию index отклонена,
	// т.к. в списке нашлось только reached элементов.
	ListInsertRejected(index, reached int, err error)
}

// Nop логгер который ничего не делает.
func Nop() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) ListInsertRejected(int, int, error) {}
