package dto

type PurchaseFilters struct {
	UserID     string
	Tags       []string
	ProductIDs []string
	Page       int
	PageSize   int
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	MaxPage         = 10_000_000
)

// Normalize applies paging defaults and caps. Offset stays within
// MaxPage*MaxPageSize.
func (f *PurchaseFilters) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Page > MaxPage {
		f.Page = MaxPage
	}
	if f.PageSize <= 0 {
		f.PageSize = DefaultPageSize
	}
	if f.PageSize > MaxPageSize {
		f.PageSize = MaxPageSize
	}
}

func (f *PurchaseFilters) Offset() int {
	return (f.Page - 1) * f.PageSize
}
