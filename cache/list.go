package cache

// node wraps a single payload resident in a recencyList and carries the
// intrusive neighbor links. A node belongs to exactly one list from
// pushFront until removeTail detaches it; passing a detached or foreign
// node back into the list is a caller contract violation.
type node[T any] struct {
	payload T
	prev    *node[T]
	next    *node[T]
}

// recencyList orders payloads from most recently used (head) to least
// recently used (tail). It is purely positional: no keys, no capacity,
// those belong to the engine. All operations are O(1).
type recencyList[T any] struct {
	head  *node[T]
	tail  *node[T]
	count int
}

// pushFront links a new node holding payload as the head and returns it
// so the caller can retain a reference for later repositioning.
func (l *recencyList[T]) pushFront(payload T) *node[T] {
	n := &node[T]{payload: payload}
	if l.head == nil {
		l.head = n
		l.tail = n
	} else {
		n.next = l.head
		l.head.prev = n
		l.head = n
	}
	l.count++
	return n
}

// moveToFront promotes n to head. No-op when n already is the head.
func (l *recencyList[T]) moveToFront(n *node[T]) {
	if n == l.head {
		return
	}

	n.prev.next = n.next
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		// n was the tail, its predecessor takes over
		l.tail = n.prev
	}

	n.prev = nil
	n.next = l.head
	l.head.prev = n
	l.head = n
}

// remove unlinks n from any position in the list.
func (l *recencyList[T]) remove(n *node[T]) {
	if n.prev == nil {
		l.head = n.next
	} else {
		n.prev.next = n.next
	}
	if n.next == nil {
		l.tail = n.prev
	} else {
		n.next.prev = n.prev
	}

	n.prev = nil
	n.next = nil
	l.count--
}

// removeTail detaches and returns the least recently used node, or nil
// when the list is empty. The returned node is fully unlinked so the
// caller can read its payload before discarding it.
func (l *recencyList[T]) removeTail() *node[T] {
	n := l.tail
	if n == nil {
		return nil
	}

	if n.prev == nil {
		l.head = nil
		l.tail = nil
	} else {
		n.prev.next = nil
		l.tail = n.prev
	}

	n.prev = nil
	n.next = nil
	l.count--
	return n
}

func (l *recencyList[T]) len() int {
	return l.count
}
