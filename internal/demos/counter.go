// Package demos holds the small single-component state demos shown on the
// home and useCallback routes.
package demos

// Counter is an unbounded integer counter.
type Counter struct {
	Count int
}

func (c *Counter) Increment() { c.Count++ }
func (c *Counter) Decrement() { c.Count-- }
func (c *Counter) Reset()     { c.Count = 0 }
