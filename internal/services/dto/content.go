package dto

import "eggslist_backend/internal/models"

// Catalog

type CategoryView struct {
	Name          string            `json:"name"`
	Slug          string            `json:"slug"`
	ImageURL      string            `json:"image_url,omitempty"`
	Subcategories []SubcategoryView `json:"subcategories"`
}

type SubcategoryView struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type CreateProductRequest struct {
	Title           string  `json:"title" validate:"required,min=3,max=128"`
	Description     string  `json:"description" validate:"omitempty,max=4000"`
	Price           float64 `json:"price" validate:"required,gt=0,lt=1000000"`
	AllowPickup     *bool   `json:"allow_pickup"`
	AllowDelivery   *bool   `json:"allow_delivery"`
	SubcategorySlug string  `json:"subcategory_slug" validate:"required"`
}

type UpdateProductRequest struct {
	Title           *string  `json:"title" validate:"omitempty,min=3,max=128"`
	Description     *string  `json:"description" validate:"omitempty,max=4000"`
	Price           *float64 `json:"price" validate:"omitempty,gt=0,lt=1000000"`
	AllowPickup     *bool    `json:"allow_pickup"`
	AllowDelivery   *bool    `json:"allow_delivery"`
	SubcategorySlug *string  `json:"subcategory_slug"`
}

// Locations

type StateView struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type CityView struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	State string `json:"state"`
}

type ZipCodeView struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
	City string `json:"city"`
}

// Blog

type BlogCategoryView struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type BlogArticleSummary struct {
	Title     string `json:"title"`
	Slug      string `json:"slug"`
	ImageURL  string `json:"image_url,omitempty"`
	Category  string `json:"category,omitempty"`
	Author    string `json:"author,omitempty"`
	CreatedAt string `json:"created_at"`
}

type BlogArticleView struct {
	BlogArticleSummary
	Body string `json:"body"`
}

type PagedBlogArticles struct {
	Articles []BlogArticleSummary `json:"articles"`
	Total    int64                `json:"total"`
}

// Site config

type TestimonialView struct {
	AuthorName string `json:"author_name"`
	AuthorRole string `json:"author_role,omitempty"`
	Text       string `json:"text"`
}

type FAQView struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func NewTestimonialView(t models.Testimonial) TestimonialView {
	return TestimonialView{AuthorName: t.AuthorName, AuthorRole: t.AuthorRole, Text: t.Text}
}

func NewFAQView(f models.FAQ) FAQView {
	return FAQView{Question: f.Question, Answer: f.Answer}
}
