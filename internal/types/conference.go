package types

type Conference struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	TotalPapers     int     `json:"totalPapers"`
	AverageCitation float64 `json:"averageCitation"`
	YearRange       string  `json:"yearRange"`
	Rank            int     `json:"rank"`
	ImpactScore     float64 `json:"impactScore"`
	AcceptanceRate  string  `json:"acceptanceRate"`
}

// ConferenceStats mirrors the aggregate counts returned by the analytics
// endpoint.
type ConferenceStats struct {
	TotalConferences int     `json:"total_conferences"`
	TotalPapers      int     `json:"total_papers"`
	YearsCovered     int     `json:"years_covered"`
	AvgPapersPerYear float64 `json:"avg_papers_per_year"`
}
