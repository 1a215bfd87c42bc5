package demos

// Aspects are the code review dimensions that can be voted on.
var Aspects = []string{"Readability", "Performance", "Security", "Documentation", "Testing"}

// Feedback tallies independent up and down votes per aspect.
type Feedback struct {
	Up   []int
	Down []int
}

func NewFeedback() *Feedback {
	return &Feedback{Up: make([]int, len(Aspects)), Down: make([]int, len(Aspects))}
}

// Upvote ignores an out-of-range index.
func (f *Feedback) Upvote(i int) {
	if i >= 0 && i < len(f.Up) {
		f.Up[i]++
	}
}

// Downvote ignores an out-of-range index.
func (f *Feedback) Downvote(i int) {
	if i >= 0 && i < len(f.Down) {
		f.Down[i]++
	}
}
