package sllist

import "github.com/sirkon/errors"

// ErrorIndexOutOfBounds ошибка отдаваемая при попытке вставки на позицию
// большую чем текущее число элементов списка.
const ErrorIndexOutOfBounds errors.Const = "index out of bounds"

func errIndexOutOfBounds(index, reached int) error {
	return errors.Wrap(ErrorIndexOutOfBounds, "walk to the insert position").
		Int("index", index).
		Int("reached", reached)
}
