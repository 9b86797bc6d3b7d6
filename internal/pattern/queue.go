package pattern

import "container/heap"

type scheduledVolley struct {
	fireFrame int
	seq       int
	shots     []Shot
}

type volleyHeap []*scheduledVolley

func (h volleyHeap) Len() int { return len(h) }
func (h volleyHeap) Less(i, j int) bool {
	if h[i].fireFrame != h[j].fireFrame {
		return h[i].fireFrame < h[j].fireFrame
	}
	return h[i].seq < h[j].seq
}
func (h volleyHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *volleyHeap) Push(x any) { *h = append(*h, x.(*scheduledVolley)) }

func (h *volleyHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// ShotQueue — отложенные залпы босса, упорядоченные по кадру выстрела.
// Залпы одного кадра выходят в порядке постановки.
type ShotQueue struct {
	clock int
	seq   int
	h     volleyHeap
}

func NewShotQueue() *ShotQueue {
	return &ShotQueue{}
}

func (q *ShotQueue) Clock() int { return q.clock }

func (q *ShotQueue) Len() int { return q.h.Len() }

// Schedule ставит залп на кадр Clock()+delay.
func (q *ShotQueue) Schedule(delay int, shots []Shot) {
	if len(shots) == 0 {
		return
	}
	q.seq++
	heap.Push(&q.h, &scheduledVolley{fireFrame: q.clock + delay, seq: q.seq, shots: shots})
}

// Tick продвигает часы на кадр и возвращает все созревшие выстрелы.
func (q *ShotQueue) Tick() []Shot {
	q.clock++
	var out []Shot
	for q.h.Len() > 0 && q.h[0].fireFrame <= q.clock {
		v := heap.Pop(&q.h).(*scheduledVolley)
		out = append(out, v.shots...)
	}
	return out
}

// Clear выбрасывает всё запланированное.
func (q *ShotQueue) Clear() {
	q.h = nil
}
