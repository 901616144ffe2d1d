package engine

// Subscribe registers fn to receive a snapshot after every state change. fn
// runs on the goroutine that made the change, outside the engine lock, so it
// may call back into the engine. The returned function unsubscribes.
func (e *Engine) Subscribe(fn func(Snapshot)) (cancel func()) {
	e.subsMu.Lock()
	id := e.nextSub
	e.nextSub++
	e.subs[id] = fn
	e.subsMu.Unlock()

	return func() {
		e.subsMu.Lock()
		delete(e.subs, id)
		e.subsMu.Unlock()
	}
}

func (e *Engine) notify(snap Snapshot) {
	e.subsMu.Lock()
	fns := make([]func(Snapshot), 0, len(e.subs))
	for _, fn := range e.subs {
		fns = append(fns, fn)
	}
	e.subsMu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}
