package post

const DefaultPerPage = 6

// Page is a 1-based page of posts ordered from newest to oldest.
type Page struct {
	Number  uint
	PerPage uint
}

func NewPage(number int, perPage uint) (Page, error) {
	if number < 1 {
		return Page{}, ErrPageNotFound
	}
	if perPage == 0 {
		perPage = DefaultPerPage
	}
	return Page{Number: uint(number), PerPage: perPage}, nil
}

func (p Page) Offset() uint {
	return (p.Number - 1) * p.PerPage
}

func (p Page) Limit() uint {
	return p.PerPage
}

type Pagination struct {
	Page  Page
	Total uint
}

func (p Pagination) Pages() uint {
	if p.Page.PerPage == 0 {
		return 0
	}
	return (p.Total + p.Page.PerPage - 1) / p.Page.PerPage
}

func (p Pagination) HasPrev() bool {
	return p.Page.Number > 1
}

func (p Pagination) HasNext() bool {
	return p.Page.Number < p.Pages()
}

// Check reports ErrPageNotFound for a page past the last one.
// The first page always exists, even when there are no posts.
func (p Pagination) Check() error {
	if p.Page.Number == 1 {
		return nil
	}
	if p.Page.Number > p.Pages() {
		return ErrPageNotFound
	}
	return nil
}
