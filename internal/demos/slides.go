package demos

type Slide struct {
	Title string
	Text  string
}

// DefaultSlides is the deck shown on the home route.
var DefaultSlides = []Slide{
	{Title: "Today's workout plan", Text: "We're gonna do 3 fundamental exercises."},
	{Title: "First, 10 push-ups", Text: "Do 10 reps. Remember about full range of motion. Don't rush."},
	{Title: "Next, 20 squats", Text: "Squats are important. Remember to keep good form and stay balanced."},
	{Title: "Finally, 15 sit-ups", Text: "Slowly go all the way down and up."},
	{Title: "Great job!", Text: "You made it, have a nice day and see you next time!"},
}

// Slides steps through a fixed deck. Moving past either end is a no-op.
type Slides struct {
	deck  []Slide
	index int
}

func NewSlides(deck []Slide) *Slides {
	return &Slides{deck: deck}
}

func (s *Slides) Len() int   { return len(s.deck) }
func (s *Slides) Index() int { return s.index }

// Current returns the active slide; ok is false for an empty deck.
func (s *Slides) Current() (Slide, bool) {
	if len(s.deck) == 0 {
		return Slide{}, false
	}
	return s.deck[s.index], true
}

func (s *Slides) CanPrev() bool    { return s.index > 0 }
func (s *Slides) CanNext() bool    { return s.index < len(s.deck)-1 }
func (s *Slides) CanRestart() bool { return s.index > 0 }

func (s *Slides) Next() {
	if s.CanNext() {
		s.index++
	}
}

func (s *Slides) Prev() {
	if s.CanPrev() {
		s.index--
	}
}

func (s *Slides) Restart() { s.index = 0 }
