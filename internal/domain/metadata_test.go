package domain

import "testing"

func TestNewMetadata(t *testing.T) {
	tests := []struct {
		name         string
		totalRecords int
		page         int
		pageSize     int
		want         Metadata
	}{
		{
			name:         "no matches yields empty metadata",
			totalRecords: 0,
			page:         1,
			pageSize:     10,
			want:         Metadata{},
		},
		{
			name:         "exact multiple of the page size",
			totalRecords: 20,
			page:         1,
			pageSize:     10,
			want:         Metadata{CurrentPage: 1, FirstPage: 1, LastPage: 2, PageSize: 10, TotalRecords: 20},
		},
		{
			name:         "partial last page rounds up",
			totalRecords: 21,
			page:         3,
			pageSize:     10,
			want:         Metadata{CurrentPage: 3, FirstPage: 1, LastPage: 3, PageSize: 10, TotalRecords: 21},
		},
		{
			name:         "single record",
			totalRecords: 1,
			page:         1,
			pageSize:     5,
			want:         Metadata{CurrentPage: 1, FirstPage: 1, LastPage: 1, PageSize: 5, TotalRecords: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewMetadata(tt.totalRecords, tt.page, tt.pageSize)

			if *got != tt.want {
				t.Errorf("NewMetadata(%d, %d, %d) = %+v, want %+v",
					tt.totalRecords, tt.page, tt.pageSize, *got, tt.want)
			}
		})
	}
}
