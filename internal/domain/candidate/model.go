package candidate

// Decision is the hiring outcome recorded for a candidate
type Decision string

const (
	DecisionSelect Decision = "select"
	DecisionReject Decision = "reject"
)

// Decisions lists every valid decision in canonical order.
var Decisions = []Decision{DecisionSelect, DecisionReject}

// Valid reports whether d is one of the enumerated decisions.
func (d Decision) Valid() bool {
	return d == DecisionSelect || d == DecisionReject
}

// Record represents one candidate's resume, interview, and hiring outcome
type Record struct {
	ID                string   `json:"id" yaml:"id"`
	Name              string   `json:"name" yaml:"name"`
	Role              string   `json:"role" yaml:"role"`
	Resume            string   `json:"resume" yaml:"resume"`
	Decision          Decision `json:"decision" yaml:"decision"`
	ReasonForDecision string   `json:"reasonForDecision" yaml:"reasonForDecision"`
	Transcript        string   `json:"transcript" yaml:"transcript"`
	JobDescription    string   `json:"jobDescription" yaml:"jobDescription"`
}

// RoleCount is the number of records sharing a role title
type RoleCount struct {
	Role  string `json:"role"`
	Count int    `json:"count"`
}

// Summary describes the composition of a record set
type Summary struct {
	Total     int              `json:"total"`
	Decisions map[Decision]int `json:"decisions"`
	Roles     []RoleCount      `json:"roles"`
}
