// Package types contains the read shapes shared between the service
// and the HTTP API.
package types

// Standing is one row of a projected championship table.
type Standing struct {
	Rank       int    `json:"rank"`
	ID         string `json:"id"`
	Name       string `json:"name"`
	Team       string `json:"team"`
	Finish     string `json:"finish"`
	RacePoints int    `json:"race_points"`
	Points     int    `json:"points"`
	Wins       int    `json:"wins"`
	Podiums    int    `json:"podiums"`
}

// Projection is the outcome of one manual what-if simulation.
type Projection struct {
	RequestID string     `json:"request_id"`
	Standings []Standing `json:"standings"`
	Champion  *Standing  `json:"champion,omitempty"`
	RunnerUp  *Standing  `json:"runner_up,omitempty"`
	Tie       bool       `json:"tie"`
}

// ScenarioGroup is one constraint card of a scenario analysis.
type ScenarioGroup struct {
	Label       string `json:"label"`
	Description string `json:"description"`
	Scenarios   int    `json:"scenarios"`
}

// Analysis is the summarized result of one exhaustive scenario search.
// Empty Groups with a zero ScenarioCount is a valid outcome: no
// combination leaves the target sole champion.
type Analysis struct {
	RequestID             string          `json:"request_id"`
	TargetID              string          `json:"target_id"`
	TargetName            string          `json:"target_name"`
	Groups                []ScenarioGroup `json:"groups"`
	ScenarioCount         int             `json:"scenario_count"`
	CombinationsEvaluated int             `json:"combinations_evaluated"`
	CollisionsSkipped     int             `json:"collisions_skipped"`
}
