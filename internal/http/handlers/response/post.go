package response

import (
	"blog/internal/core/domain/post"
	"time"

	"github.com/golang-module/carbon/v2"
)

type Author struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	ImageFile string `json:"image_file"`
}

func (a *Author) FromDomainAuthor(da post.Author) {
	a.ID = int64(da.ID)
	a.Username = string(da.Username)
	a.ImageFile = string(da.ImageFile)
}

type Post struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	DatePosted time.Time `json:"date_posted"`
	Date       string    `json:"date"`
	Author     Author    `json:"author"`
}

func (p *Post) FromDomainPost(dp post.PostWithAuthor) {
	p.ID = int64(dp.ID)
	p.Title = string(dp.Title)
	p.Content = string(dp.Content)
	p.DatePosted = dp.DatePosted
	p.Date = carbon.Time2Carbon(dp.DatePosted).ToDateString()
	p.Author.FromDomainAuthor(dp.Author)
}

func Posts(dps []post.PostWithAuthor) []Post {
	posts := make([]Post, len(dps))
	for ix, dp := range dps {
		posts[ix].FromDomainPost(dp)
	}
	return posts
}

type Pagination struct {
	Page    uint `json:"page"`
	PerPage uint `json:"per_page"`
	Pages   uint `json:"pages"`
	Total   uint `json:"total"`
	HasPrev bool `json:"has_prev"`
	HasNext bool `json:"has_next"`
}

func (p *Pagination) FromDomainPagination(dp post.Pagination) {
	p.Page = dp.Page.Number
	p.PerPage = dp.Page.PerPage
	p.Pages = dp.Pages()
	p.Total = dp.Total
	p.HasPrev = dp.HasPrev()
	p.HasNext = dp.HasNext()
}
