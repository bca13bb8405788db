package search

import "errors"

// ErrInvalidPage is returned for page numbers below one or past the last page.
var ErrInvalidPage = errors.New("invalid page")

// PageInfo describes one page of a list. Size 0 means the list is not paginated.
type PageInfo struct {
	Number      int   `json:"number"`
	Size        int   `json:"size"`
	Total       int64 `json:"total"`
	NumPages    int   `json:"num_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
}

// NewPageInfo resolves page (0 meaning the first page) against total
// records split into pages of size.
func NewPageInfo(page, size int, total int64) (PageInfo, error) {
	if page == 0 {
		page = 1
	}
	if page < 1 || size < 0 {
		return PageInfo{}, ErrInvalidPage
	}

	if size == 0 {
		if page != 1 {
			return PageInfo{}, ErrInvalidPage
		}
		return PageInfo{Number: 1, Total: total, NumPages: 1}, nil
	}

	numPages := int((total + int64(size) - 1) / int64(size))
	if numPages == 0 {
		// an empty list still has one (empty) page
		numPages = 1
	}
	if page > numPages {
		return PageInfo{}, ErrInvalidPage
	}

	return PageInfo{
		Number:      page,
		Size:        size,
		Total:       total,
		NumPages:    numPages,
		HasNext:     page < numPages,
		HasPrevious: page > 1,
	}, nil
}

func (p PageInfo) Offset() int {
	if p.Size == 0 {
		return 0
	}
	return (p.Number - 1) * p.Size
}

// Paginate slices items to the page described by p.
func Paginate[T any](items []T, p PageInfo) []T {
	if p.Size == 0 {
		return items
	}
	start := p.Offset()
	if start >= len(items) {
		return items[:0]
	}
	end := start + p.Size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
