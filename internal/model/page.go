package model

// Page describes one slice of a paginated listing.
type Page struct {
	ItemCount   int  `json:"item_count"`
	PageIndex   int  `json:"page_index"`
	PageSize    int  `json:"page_size"`
	PageCount   int  `json:"page_count"`
	Offset      int  `json:"offset"`
	Limit       int  `json:"limit"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

// NewPage computes paging for itemCount items. pageIndex is 1-based; an index
// past the last page yields an empty window. pageSize defaults to 10.
func NewPage(itemCount, pageIndex, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = 10
	}
	p := Page{ItemCount: itemCount, PageSize: pageSize}
	p.PageCount = itemCount / pageSize
	if itemCount%pageSize > 0 {
		p.PageCount++
	}
	if pageIndex < 1 {
		pageIndex = 1
	}
	if itemCount == 0 || pageIndex > p.PageCount {
		// Nothing to return: first page, empty window
		p.PageIndex = 1
	} else {
		p.PageIndex = pageIndex
		p.Offset = pageSize * (pageIndex - 1)
		p.Limit = pageSize
	}
	p.HasNext = p.PageIndex < p.PageCount
	p.HasPrevious = p.PageIndex > 1
	return p
}
