package domain

// Scenario is one complete set of calculation arguments under a name.
// Comparisons derive alternative scenarios from a base one.
type Scenario struct {
	Name   string
	Input  SalaryInput
	Period Period
	Year   int
	Ruling RulingOptions
}

// DeepCopy returns an independent copy. Every field is a value type,
// so a plain copy suffices.
func (s *Scenario) DeepCopy() *Scenario {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}
