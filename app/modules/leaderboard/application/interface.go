package leaderboardservice

import "context"

// Service defines the leaderboard read operations.
type Service interface {
	// ListStandings returns every player ranked by score.
	ListStandings(ctx context.Context) ([]Standing, error)

	// ExportStandings renders the standings as an XLSX workbook.
	ExportStandings(ctx context.Context) ([]byte, error)

	// ChartStandings renders the standings as a PNG bar chart.
	ChartStandings(ctx context.Context) ([]byte, error)
}
