package sllist

import "github.com/sirkon/sllist/internal/logging"

// Option определение опции списка.
type Option func(l *List, _ optionRestriction)

type optionRestriction struct{}

// WithLogger задаёт логгер, которому сообщается об отклонённых вставках.
// По-умолчанию сообщения никуда не уходят.
func WithLogger(logger logging.Logger) Option {
	return func(l *List, _ optionRestriction) {
		if logger == nil {
			return
		}

		l.logger = logger
	}
}
