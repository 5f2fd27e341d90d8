package life

// Stats accumulates counters across generations since the board was last
// replaced.
type Stats struct {
	Births      int
	Deaths      int
	Generations int
	Population  int
}

func (s *Stats) record(r StepReport, population int) {
	s.Births += r.Births
	s.Deaths += r.Deaths
	s.Generations++
	s.Population = population
}
