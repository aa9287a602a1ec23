package sllist

import "github.com/sirkon/sllist/internal/logging"

// New конструктор пустого односвязного списка.
func New(opts ...Option) *List {
	l := &List{
		logger: logging.Nop(),
	}
	for _, opt := range opts {
		opt(l, optionRestriction{})
	}

	return l
}

// List односвязный список целых чисел.
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
type List struct {
	first *node

	logger logging.Logger
}

// InsertAt вставка значения так, чтобы оно оказалось на позиции index
// (нумерация с нуля). Элементы начиная с этой позиции сдвигаются на одну назад.
// Вставка на позицию равную длине списка добавляет значение в конец.
// При index большем длины списка или отрицательном возвращается ошибка
// ErrorIndexOutOfBounds, список при этом не меняется.
func (l *List) InsertAt(index int, value int) error {
	if index < 0 {
		return l.reject(index, 0)
	}

	if index == 0 {
		l.first = &node{
			next:  l.first,
			value: value,
		}
		return nil
	}

	// Идём index-1 шагов от первого элемента до предшественника новой позиции.
	// reached по выходу из цикла при prev == nil равно длине списка.
	prev := l.first
	var reached int
	for prev != nil && reached < index-1 {
		prev = prev.next
		reached++
	}
	if prev == nil {
		return l.reject(index, reached)
	}

	prev.next = &node{
		next:  prev.next,
		value: value,
	}
	return nil
}

func (l *List) reject(index, reached int) error {
	err := errIndexOutOfBounds(index, reached)
	l.logger.ListInsertRejected(index, reached, err)
	return err
}
