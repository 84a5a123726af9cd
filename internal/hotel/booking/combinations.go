package booking

// combinations lazily enumerates the k-element index combinations of
// {0..n-1} in lexicographic order: {0,1,2}, {0,1,3}, ..., {n-3,n-2,n-1}.
//
// Usage:
//
//	c := newCombinations(n, k)
//	for c.Next() {
//		idx := c.Indices()
//	}
type combinations struct {
	n, k    int
	idx     []int
	started bool
	done    bool
}

func newCombinations(n, k int) *combinations {
	return &combinations{n: n, k: k}
}

// Next advances to the next combination and reports whether one exists.
// A zero k yields exactly one, empty, combination.
func (c *combinations) Next() bool {
	if c.done {
		return false
	}
	if !c.started {
		c.started = true
		if c.k < 0 || c.k > c.n {
			c.done = true
			return false
		}
		c.idx = make([]int, c.k)
		for i := range c.idx {
			c.idx[i] = i
		}
		return true
	}

	// Rightmost position that has not reached its maximum value n-k+i.
	i := c.k - 1
	for i >= 0 && c.idx[i] == c.n-c.k+i {
		i--
	}
	if i < 0 {
		c.done = true
		return false
	}
	c.idx[i]++
	for j := i + 1; j < c.k; j++ {
		c.idx[j] = c.idx[j-1] + 1
	}
	return true
}

// Indices returns the current combination. The slice is reused by Next.
func (c *combinations) Indices() []int {
	return c.idx
}
