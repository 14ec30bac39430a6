package pagination

import (
	"fmt"

	"gorm.io/gorm"
)

const (
	DefaultPerPage = 50
	maxPerPage     = 250
)

type Pagination struct {
	Page    int `form:"page"`
	PerPage int `form:"per_page"`
}

// Normalize clamps the requested page and page size to usable values.
func (p Pagination) Normalize() Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage <= 0 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > maxPerPage {
		p.PerPage = maxPerPage
	}
	return p
}

type PageInfo struct {
	CurrentPage int     `json:"current_page"`
	NextPageURL *string `json:"next_page_url"`
	PrevPageURL *string `json:"prev_page_url"`
	PerPage     int     `json:"per_page"`
	Total       int64   `json:"total"`
	LastPage    int     `json:"last_page"`
}

// NewPageInfo builds page metadata for a result set of total rows.
// Next/previous links are nil at the boundaries.
func NewPageInfo(basePath string, page Pagination, total int64) *PageInfo {
	page = page.Normalize()

	lastPage := int((total + int64(page.PerPage) - 1) / int64(page.PerPage))
	if lastPage < 1 {
		lastPage = 1
	}

	info := &PageInfo{
		CurrentPage: page.Page,
		PerPage:     page.PerPage,
		Total:       total,
		LastPage:    lastPage,
	}
	if page.Page < lastPage {
		info.NextPageURL = pageURL(basePath, page.Page+1, page.PerPage)
	}
	if page.Page > 1 {
		info.PrevPageURL = pageURL(basePath, page.Page-1, page.PerPage)
	}
	return info
}

// Paginate counts the statement's result set, applies offset/limit, and
// scans the requested page into dest.
func Paginate(stmt *gorm.DB, page Pagination, basePath string, dest any) (*PageInfo, error) {
	page = page.Normalize()

	var total int64
	if err := stmt.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	err := stmt.
		Offset((page.Page - 1) * page.PerPage).
		Limit(page.PerPage).
		Find(dest).Error
	if err != nil {
		return nil, err
	}

	return NewPageInfo(basePath, page, total), nil
}

func pageURL(basePath string, page, perPage int) *string {
	url := fmt.Sprintf("%s?page=%d&per_page=%d", basePath, page, perPage)
	return &url
}
