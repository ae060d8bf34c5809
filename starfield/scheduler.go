package starfield

// FrameID identifies a requested frame callback. The zero value is never
// handed out.
type FrameID uint64

type frameRequest struct {
	id FrameID
	fn func()
}

// FrameQueue is a requestAnimationFrame-style scheduler pumped by its host.
// It is not safe for concurrent use; hosts call it from their loop goroutine.
type FrameQueue struct {
	pending []frameRequest
	running []frameRequest
	lastID  FrameID
}

// NewFrameQueue creates an empty frame queue
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{
		pending: make([]frameRequest, 0, 4),
	}
}

// RequestFrame queues fn for the next RunFrame
func (q *FrameQueue) RequestFrame(fn func()) FrameID {
	q.lastID++
	q.pending = append(q.pending, frameRequest{id: q.lastID, fn: fn})
	return q.lastID
}

// CancelFrame drops a pending request; unknown ids are ignored
func (q *FrameQueue) CancelFrame(id FrameID) {
	for i, req := range q.pending {
		if req.id == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
	for i := range q.running {
		if q.running[i].id == id {
			q.running[i].fn = nil
			return
		}
	}
}

// RunFrame runs every callback that was pending on entry, in request order,
// and returns how many ran. Requests made by those callbacks wait for the
// next call.
func (q *FrameQueue) RunFrame() int {
	if len(q.pending) == 0 {
		return 0
	}
	q.running = q.pending
	q.pending = make([]frameRequest, 0, cap(q.running))

	ran := 0
	for i := range q.running {
		fn := q.running[i].fn
		if fn == nil {
			continue // cancelled by an earlier callback in this batch
		}
		q.running[i].fn = nil
		fn()
		ran++
	}
	q.running = nil
	return ran
}

// Len returns the number of pending requests
func (q *FrameQueue) Len() int {
	return len(q.pending)
}
