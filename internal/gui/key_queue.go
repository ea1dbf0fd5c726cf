package gui

import "github.com/appengine-ltd/ascii-wars/internal/armoury"

type keyQueue struct {
	ch chan armoury.Key
}

func newKeyQueue(size int) *keyQueue {
	if size < 1 {
		size = 32
	}
	return &keyQueue{ch: make(chan armoury.Key, size)}
}

// Enqueue drops the key when the queue is full.
func (q *keyQueue) Enqueue(k armoury.Key) bool {
	if q == nil {
		return false
	}
	select {
	case q.ch <- k:
		return true
	default:
		return false
	}
}

func (q *keyQueue) Dequeue() (armoury.Key, bool) {
	if q == nil {
		return armoury.Key{}, false
	}
	select {
	case k := <-q.ch:
		return k, true
	default:
		return armoury.Key{}, false
	}
}

// frameKeys orders one frame of input: queued characters first, then the
// special keys pressed that frame.
func frameKeys(chars []int32, specials []armoury.KeyCode) []armoury.Key {
	out := make([]armoury.Key, 0, len(chars)+len(specials))
	for _, ch := range chars {
		k := armoury.Ordinal(int(ch))
		if k.Code == armoury.KeyNone {
			continue
		}
		out = append(out, k)
	}
	for _, code := range specials {
		out = append(out, armoury.CodeKey(code))
	}
	return out
}
