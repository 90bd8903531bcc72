package pool

// fifo is a growable ring buffer of slot indices.
type fifo struct {
	buf  []uint32
	head int
	size int
}

func newFIFO(capacity int) *fifo {
	if capacity < 1 {
		capacity = 1
	}
	return &fifo{buf: make([]uint32, capacity)}
}

func (q *fifo) Len() int { return q.size }

func (q *fifo) Push(v uint32) {
	if q.size == len(q.buf) {
		grown := make([]uint32, len(q.buf)*2)
		for i := 0; i < q.size; i++ {
			grown[i] = q.buf[(q.head+i)%len(q.buf)]
		}
		q.buf = grown
		q.head = 0
	}
	q.buf[(q.head+q.size)%len(q.buf)] = v
	q.size++
}

func (q *fifo) Pop() (uint32, bool) {
	if q.size == 0 {
		return 0, false
	}
	v := q.buf[q.head]
	q.head = (q.head + 1) % len(q.buf)
	q.size--
	return v, true
}
