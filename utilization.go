package orxlist

// NodeUtilization reports how many of the arena's allocated slots hold a
// live node versus a closed (freed, not yet reclaimed) one. Kept as its
// own small file rather than folded into the list types.
type NodeUtilization struct {
	NumActive int
	NumClosed int
}

// Ratio returns NumActive / (NumActive+NumClosed), or 1.0 for an arena that
// has never allocated anything.
func (u NodeUtilization) Ratio() float64 {
	total := u.NumActive + u.NumClosed
	if total == 0 {
		return 1.0
	}
	return float64(u.NumActive) / float64(total)
}
