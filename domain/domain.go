// Package domain contains the records produced by the HLTV page
// extractors along with the response envelope every transport returns.
package domain

// MatchSummary is a single upcoming match from the matches listing page.
// Scores are always zero for upcoming matches; they exist so the record
// shape stays identical to finished results in downstream consumers.
type MatchSummary struct {
	Team1  string `json:"team1"`
	Team2  string `json:"team2"`
	Event  string `json:"event"`
	Time   string `json:"time"`
	BoType string `json:"bo_type"`
	URL    string `json:"url"`
	Score1 int    `json:"score1"`
	Score2 int    `json:"score2"`
}

// RankingEntry is one row of the world ranking page.
type RankingEntry struct {
	Rank    int      `json:"rank"`
	Title   string   `json:"title"`
	Points  int      `json:"points"`
	Members []string `json:"members"`
	URL     string   `json:"url"`
}

// ResultEntry is a finished match from the results page.
type ResultEntry struct {
	Team1  string `json:"team1"`
	Team2  string `json:"team2"`
	Score1 int    `json:"score1"`
	Score2 int    `json:"score2"`
	Event  string `json:"event"`
	URL    string `json:"url"`
}

// PlayerProfile combines the player profile page with the dedicated
// statistics page. Every statistic is kept as the raw display string,
// "N/A" when the source markup did not expose it anywhere.
type PlayerProfile struct {
	Name         string `json:"name"`
	FullName     string `json:"full_name"`
	Team         string `json:"team"`
	Country      string `json:"country"`
	Rating       string `json:"rating"`
	KDRatio      string `json:"kd_ratio"`
	DPR          string `json:"dpr"`
	KAST         string `json:"kast"`
	Impact       string `json:"impact"`
	ADR          string `json:"adr"`
	KPR          string `json:"kpr"`
	APR          string `json:"apr"`
	HeadshotPct  string `json:"headshot_pct"`
	MapsPlayed   string `json:"maps_played"`
	RoundsPlayed string `json:"rounds_played"`
	TotalKills   string `json:"total_kills"`
	TotalDeaths  string `json:"total_deaths"`
	URL          string `json:"url"`
}

// TeamProfile is the team profile page summary.
type TeamProfile struct {
	Name    string   `json:"name"`
	Rank    string   `json:"rank"`
	Members []string `json:"members"`
	Coach   string   `json:"coach"`
	URL     string   `json:"url"`
}

// EventSummary is one tournament from the events listing page.
type EventSummary struct {
	Name      string `json:"name"`
	Tier      string `json:"tier"`
	TierName  string `json:"tier_name"`
	EventType string `json:"event_type"`
	Location  string `json:"location"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
	URL       string `json:"url"`
}

// Envelope is the uniform wrapper returned by every data-producing
// operation. Success is true iff at least one record was produced, or
// the looked-up entity was located. Error is only set for hard
// failures; a lookup that found nothing is a normal outcome.
type Envelope[T any] struct {
	Success   bool   `json:"success"`
	Data      T      `json:"data"`
	Message   string `json:"message,omitempty"`
	Source    string `json:"source"`
	Timestamp string `json:"timestamp"`
	Error     string `json:"error,omitempty"`
}
