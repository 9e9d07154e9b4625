package pagination

// Defaults and bounds for page sizes across list endpoints and admin tables.
const (
	DefaultPerPage = 25
	MaxPerPage     = 100
)

// Page describes a 1-based window over a list of Total items.
// It is shared by repositories (offset math), JSON list responses,
// and the admin table footer.
type Page struct {
	Number  int   `json:"page"`
	PerPage int   `json:"perPage"`
	Total   int64 `json:"total"`
}

// New builds a Page, clamping the page number and per-page size to sane bounds.
func New(number, perPage int, total int64) Page {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	if number < 1 {
		number = 1
	}
	return Page{Number: number, PerPage: perPage, Total: total}
}

// Offset returns the row offset for SQL LIMIT/OFFSET queries.
func (p Page) Offset() int {
	return (p.Number - 1) * p.PerPage
}

// TotalPages returns the number of pages needed to show Total items.
// An empty list still has one (empty) page.
func (p Page) TotalPages() int {
	if p.Total <= 0 {
		return 1
	}
	pages := int(p.Total) / p.PerPage
	if int(p.Total)%p.PerPage != 0 {
		pages++
	}
	return pages
}

func (p Page) HasPrev() bool {
	return p.Number > 1
}

func (p Page) HasNext() bool {
	return p.Number < p.TotalPages()
}

func (p Page) Prev() int {
	if !p.HasPrev() {
		return 1
	}
	return p.Number - 1
}

func (p Page) Next() int {
	if !p.HasNext() {
		return p.TotalPages()
	}
	return p.Number + 1
}

// FirstItem returns the 1-based index of the first item on this page,
// or 0 when the list is empty.
func (p Page) FirstItem() int {
	if p.Total == 0 {
		return 0
	}
	return p.Offset() + 1
}

// LastItem returns the 1-based index of the last item on this page.
func (p Page) LastItem() int {
	last := p.Offset() + p.PerPage
	if int64(last) > p.Total {
		last = int(p.Total)
	}
	return last
}

// Window returns the page numbers to show in pagination controls,
// up to radius pages either side of the current page.
func (p Page) Window(radius int) []int {
	if radius < 0 {
		radius = 0
	}
	lo := p.Number - radius
	if lo < 1 {
		lo = 1
	}
	hi := p.Number + radius
	if last := p.TotalPages(); hi > last {
		hi = last
	}
	pages := make([]int, 0, hi-lo+1)
	for n := lo; n <= hi; n++ {
		pages = append(pages, n)
	}
	return pages
}
