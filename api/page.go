package api

// SortMetadata describes the sort state of a page, as emitted by the
// backend's pagination layer.
type SortMetadata struct {
	Empty    *bool `json:"empty,omitempty"`
	Sorted   *bool `json:"sorted,omitempty"`
	Unsorted *bool `json:"unsorted,omitempty"`
}

// Pageable is the nested request-echo metadata on a page. Everything is
// optional; older backend versions omit the whole block.
type Pageable struct {
	Sort       *SortMetadata `json:"sort,omitempty"`
	Offset     *int64        `json:"offset,omitempty"`
	PageNumber *int          `json:"pageNumber,omitempty"`
	PageSize   *int          `json:"pageSize,omitempty"`
	Paged      *bool         `json:"paged,omitempty"`
	Unpaged    *bool         `json:"unpaged,omitempty"`
}

// Page is one slice of an offset-paginated listing.
type Page[T any] struct {
	Content          []T       `json:"content"`
	Pageable         *Pageable `json:"pageable,omitempty"`
	TotalElements    *int64    `json:"totalElements,omitempty"`
	TotalPages       *int      `json:"totalPages,omitempty"`
	Last             *bool     `json:"last,omitempty"`
	First            *bool     `json:"first,omitempty"`
	NumberOfElements *int      `json:"numberOfElements,omitempty"`
	Size             *int      `json:"size,omitempty"`
	Number           *int      `json:"number,omitempty"`
	Empty            *bool     `json:"empty,omitempty"`
}

// IsLast reports whether this is the final page. Absent metadata counts as
// last so that callers without paging info stop rather than loop.
func (p *Page[T]) IsLast() bool {
	if p.Last == nil {
		return true
	}
	return *p.Last
}
