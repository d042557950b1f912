package orxlist

import "testing"

const benchmarkSize = 10000

func BenchmarkDoublyPushBack(b *testing.B) {
	for i := 0; i < b.N; i++ {
		l := NewDoubly[int]()
		for j := 0; j < benchmarkSize; j++ {
			l.PushBack(j)
		}
	}
}

func BenchmarkDoublyPushPopChurn(b *testing.B) {
	l := NewDoubly[int]()
	for j := 0; j < benchmarkSize; j++ {
		l.PushBack(j)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		idx := l.PushBack(i)
		l.Remove(idx)
	}
}

func BenchmarkDoublyReclaimClosedNodes(b *testing.B) {
	for i := 0; i < b.N; i++ {
		l := NewDoubly[int](WithReclaimPolicy[int](ReclaimNever{}))
		var idxs []NodeIndex
		for j := 0; j < benchmarkSize; j++ {
			idxs = append(idxs, l.PushBack(j))
		}
		for j := 0; j < benchmarkSize/2; j++ {
			l.Remove(idxs[j])
		}
		b.StartTimer()
		l.ReclaimClosedNodes()
		b.StopTimer()
	}
}

func BenchmarkSinglyPushBack(b *testing.B) {
	for i := 0; i < b.N; i++ {
		l := NewSingly[int]()
		for j := 0; j < benchmarkSize; j++ {
			l.PushBack(j)
		}
	}
}

func BenchmarkDoublyAppendBack(b *testing.B) {
	for i := 0; i < b.N; i++ {
		a := NewDoubly[int]()
		c := NewDoubly[int]()
		for j := 0; j < benchmarkSize/2; j++ {
			a.PushBack(j)
			c.PushBack(j)
		}
		b.StartTimer()
		a.AppendBack(c)
		b.StopTimer()
	}
}
