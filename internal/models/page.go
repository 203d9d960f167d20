package models

// Page is one page of a paginated listing.
type Page[T any] struct {
	Items []T `json:"items"`

	// Total is the length of the full listing
	Total int `json:"total"`

	// Number is the 1-indexed page number
	Number int `json:"page"`

	Limit int `json:"limit"`
}

// Paginate returns page number (1-indexed) of items, limit items per page.
// Out-of-range pages are empty rather than an error.
func Paginate[T any](items []T, number, limit int) Page[T] {
	page := Page[T]{
		Items:  []T{},
		Total:  len(items),
		Number: number,
		Limit:  limit,
	}
	if number < 1 || limit < 1 {
		return page
	}

	start := (number - 1) * limit
	if start >= len(items) {
		return page
	}
	end := min(start+limit, len(items))

	page.Items = items[start:end]
	return page
}

// TotalPages returns the number of pages the listing spans.
func (p Page[T]) TotalPages() int {
	if p.Limit < 1 {
		return 0
	}
	return (p.Total + p.Limit - 1) / p.Limit
}

// ShowNav reports whether the listing needs more than one page.
func (p Page[T]) ShowNav() bool {
	return p.Total > p.Limit
}

func (p Page[T]) HasPrevious() bool {
	return p.Number != 1
}

func (p Page[T]) HasNext() bool {
	return p.Limit*p.Number < p.Total
}
