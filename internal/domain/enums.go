package domain

// ReportSortField identifies a sortable column on the reports listing.
type ReportSortField string

const (
	SortByName        ReportSortField = "name"
	SortByCreditScore ReportSortField = "credit_score"
	SortByProcessedAt ReportSortField = "processed_at"
	SortByPAN         ReportSortField = "pan"
)

// AllowedSortFields maps accepted sort query values to their column
// names. Both snake_case and the legacy camelCase spellings are
// accepted.
var AllowedSortFields = map[string]ReportSortField{
	"name":         SortByName,
	"credit_score": SortByCreditScore,
	"creditScore":  SortByCreditScore,
	"processed_at": SortByProcessedAt,
	"processedAt":  SortByProcessedAt,
	"pan":          SortByPAN,
}

// SortOrderAsc and SortOrderDesc are the accepted sort directions.
const (
	SortOrderAsc  = "ASC"
	SortOrderDesc = "DESC"
)
