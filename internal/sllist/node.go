package sllist

// node узел односвязного списка. Владеет ссылкой на следующий узел.
type node struct {
	next  *node
	value int
}
