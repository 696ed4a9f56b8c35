package vterm

// maxParams bounds the number of primary parameter slots a single CSI
// sequence may carry, per §3/§4.1. maxSubParams bounds the subparameters
// attached to any one primary (enough for the longest real-world form,
// 38:2:<colorspace>:r:g:b:tolerance:matching).
const (
	maxParams    = 32
	maxSubParams = 8
)

// Params is the fixed-size parameter container the parser fills and the
// screen reads from. It never grows past construction: once every slot
// is in use, further values are dropped and the caller is expected to
// have set the parser's ignoring flag.
type Params struct {
	count      int
	values     [maxParams]int32
	subs       [maxParams][maxSubParams]int32
	subCounts  [maxParams]int8
	hasPrimary bool // true once the current (not-yet-pushed-by-';') cluster got its base value
}

// Reset clears the container for reuse without allocating.
func (p *Params) Reset() {
	p.count = 0
	p.hasPrimary = false
}

// Push finalizes v as a new primary parameter. Returns false if the
// container is already full, in which case the value is dropped.
func (p *Params) Push(v int32) bool {
	if p.count >= maxParams {
		return false
	}
	p.values[p.count] = v
	p.subCounts[p.count] = 0
	p.count++
	p.hasPrimary = true
	return true
}

// Extend attaches v as a subparameter of the current (most recently
// pushed) primary. Returns false if there is no current primary yet
// (in which case the caller should Push instead) or its subparameter
// slots are full.
func (p *Params) Extend(v int32) bool {
	if p.count == 0 {
		return false
	}
	i := p.count - 1
	n := p.subCounts[i]
	if int(n) >= maxSubParams {
		return false
	}
	p.subs[i][n] = v
	p.subCounts[i] = n + 1
	return true
}

// Feed finalizes v as either a new primary or a subparameter of the
// current cluster. Which one it becomes depends only on whether the
// cluster already has a primary value: the separator that terminated v
// (':', ';', or the final byte) never matters on its own, since a ';'
// already calls StartCluster to clear hasPrimary before the next Feed,
// and a ':' never does — so the first value fed since the last
// StartCluster is always the primary, and every later one in the same
// cluster (regardless of what terminated it) is a subparameter.
func (p *Params) Feed(v int32) bool {
	if p.hasPrimary {
		return p.Extend(v)
	}
	return p.Push(v)
}

// StartCluster marks that the next Feed begins a fresh parameter,
// called when the parser consumes a ';'.
func (p *Params) StartCluster() {
	p.hasPrimary = false
}

// Len returns the number of primary parameters collected.
func (p *Params) Len() int { return p.count }

// Get returns the values for parameter i: its primary value followed by
// any subparameters, or nil if i is out of range.
func (p *Params) Get(i int) []int32 {
	if i < 0 || i >= p.count {
		return nil
	}
	n := int(p.subCounts[i])
	out := make([]int32, 0, n+1)
	out = append(out, p.values[i])
	out = append(out, p.subs[i][:n]...)
	return out
}

// SubCount returns how many subparameters parameter i carries.
func (p *Params) SubCount(i int) int {
	if i < 0 || i >= p.count {
		return 0
	}
	return int(p.subCounts[i])
}

// GetSingle returns the primary value of parameter i, or def if i is
// out of range or the value is zero (CSI parameters are 1-origin by
// convention: a 0 or absent parameter means "use the default").
func (p *Params) GetSingle(i int, def int) int {
	if i < 0 || i >= p.count {
		return def
	}
	v := int(p.values[i])
	if v == 0 {
		return def
	}
	return v
}

// GetSub returns subparameter j of parameter i (0-indexed, not counting
// the primary), or def if absent.
func (p *Params) GetSub(i, j int, def int) int {
	if i < 0 || i >= p.count {
		return def
	}
	if j < 0 || j >= int(p.subCounts[i]) {
		return def
	}
	return int(p.subs[i][j])
}
