// internal/models/match.go
package models

// MatchedLender is one entry of a match result: a lender the applicant is
// eligible to be introduced to, with the ranking score and the reasons the
// score was awarded. Results are built fresh on every match run and handed
// straight to the presentation layer; nothing here is persisted by the
// matching engine itself.
type MatchedLender struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Score   int      `json:"score"`
	Reasons []string `json:"reasons"`
}
