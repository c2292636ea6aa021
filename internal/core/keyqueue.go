package core

// KeyQueue is a bounded key buffer between a backend's input pump and the
// game loop. Push never blocks: when the queue is full the oldest key is
// dropped.
type KeyQueue struct {
	ch chan KeyEvent
}

// NewKeyQueue creates a queue holding at most size keys (minimum 1).
func NewKeyQueue(size int) *KeyQueue {
	if size < 1 {
		size = 1
	}
	return &KeyQueue{ch: make(chan KeyEvent, size)}
}

// Push queues ev, dropping the oldest key if the queue is full.
func (q *KeyQueue) Push(ev KeyEvent) {
	select {
	case q.ch <- ev:
		return
	default:
	}

	select {
	case <-q.ch:
	default:
	}
	select {
	case q.ch <- ev:
	default:
	}
}

// C returns the receive side of the queue.
func (q *KeyQueue) C() <-chan KeyEvent {
	return q.ch
}
