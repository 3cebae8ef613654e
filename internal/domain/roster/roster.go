// Package roster defines the championship entrants supplied to the core.
//
// The roster is injected input: the core never mutates a Contender, and
// every derived value (race points, projected totals) is computed into
// fresh result objects.
package roster

// Contender is a championship entrant with its pre-race cumulative
// totals. TitleFight marks the entrants whose finishing positions are
// swept by the scenario explorer.
type Contender struct {
	ID         string `yaml:"id" json:"id"`
	Name       string `yaml:"name" json:"name"`
	Team       string `yaml:"team" json:"team"`
	Points     int    `yaml:"points" json:"points"`
	Wins       int    `yaml:"wins" json:"wins"`
	Podiums    int    `yaml:"podiums" json:"podiums"`
	TitleFight bool   `yaml:"title_fight" json:"title_fight"`
}

// Tracked filters the roster down to the title-fight contenders,
// preserving roster order.
func Tracked(list []Contender) []Contender {
	tracked := make([]Contender, 0, len(list))
	for _, c := range list {
		if c.TitleFight {
			tracked = append(tracked, c)
		}
	}
	return tracked
}

// Default returns the built-in sample roster used when no roster file
// is configured. Totals reflect a three-way fight going into the
// season finale.
func Default() []Contender {
	return []Contender{
		{ID: "verstappen", Name: "Max Verstappen", Team: "Red Bull Racing", Points: 393, Wins: 9, Podiums: 14, TitleFight: true},
		{ID: "norris", Name: "Lando Norris", Team: "McLaren", Points: 371, Wins: 4, Podiums: 13, TitleFight: true},
		{ID: "leclerc", Name: "Charles Leclerc", Team: "Ferrari", Points: 356, Wins: 3, Podiums: 11, TitleFight: true},
		{ID: "piastri", Name: "Oscar Piastri", Team: "McLaren", Points: 292, Wins: 2, Podiums: 8},
		{ID: "sainz", Name: "Carlos Sainz", Team: "Ferrari", Points: 290, Wins: 2, Podiums: 9},
	}
}
