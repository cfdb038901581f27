package domain

// Metadata describes the page window a list query returned.
type Metadata struct {
	CurrentPage  int
	FirstPage    int
	LastPage     int
	PageSize     int
	TotalRecords int
}

// NewMetadata derives the page window from the total row count. A total of
// zero yields an empty Metadata so callers can tell "nothing matched" from
// "page one of something".
func NewMetadata(totalRecords, page, pageSize int) *Metadata {
	if totalRecords == 0 {
		return &Metadata{}
	}

	lastPage := totalRecords / pageSize
	if totalRecords%pageSize != 0 {
		lastPage++
	}

	return &Metadata{
		CurrentPage:  page,
		FirstPage:    1,
		LastPage:     lastPage,
		PageSize:     pageSize,
		TotalRecords: totalRecords,
	}
}
