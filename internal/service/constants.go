package service

const (
	// Pagination limits
	DefaultPageSize = 15
	MaxPageSize     = 200

	// Chart data
	MaxChartPoints = 120

	// Name used when an extraction has no source file
	UntitledReport = "Untitled report"
)
