package orxlist

// ReclaimPolicy decides, after a removal has grown the hole count, whether
// the arena should be compacted immediately. It is switchable on a live
// list without touching the arena (see (*DoublyList[T]).IntoAutoReclaim /
// IntoLazyReclaim).
type ReclaimPolicy interface {
	shouldReclaim(live, holes int) bool
	name() string
}

// ReclaimThreshold compacts whenever holes/total exceeds 1/2^D, i.e.
// holes*2^D > live+holes. D=2 is the default used by NewDoubly/NewSingly.
type ReclaimThreshold struct {
	D uint
}

func (t ReclaimThreshold) shouldReclaim(live, holes int) bool {
	total := live + holes
	if total == 0 || holes == 0 {
		return false
	}
	return (holes << t.D) > total
}

func (t ReclaimThreshold) name() string { return "threshold" }

// ReclaimNever never compacts implicitly; only an explicit call to
// ReclaimClosedNodes performs compaction.
type ReclaimNever struct{}

func (ReclaimNever) shouldReclaim(_, _ int) bool { return false }
func (ReclaimNever) name() string                { return "never" }

// DefaultReclaimPolicy returns the default threshold policy, D=2.
func DefaultReclaimPolicy() ReclaimPolicy { return ReclaimThreshold{D: 2} }
