// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Book is the single resource type exposed by the API.
//
// ID is assigned by the store on creation; any ID sent by a client in a
// create or update body is ignored in favour of the store value or the URL
// path parameter.
type Book struct {
	// ID is the store-assigned identifier of the book.
	ID int64 `json:"id"`

	// Title is the book title. Required.
	Title string `json:"title"`

	// Author is the author's display name.
	Author string `json:"author"`

	// Category is a free-form genre or shelf label.
	Category string `json:"category"`

	// Year is the publication year. Persisted as publication_year.
	Year int `json:"year"`

	// Price is the list price of the book.
	Price float64 `json:"price"`
}

// TableName returns the name of the database table
// associated with the Book model.
func (b Book) TableName() string {
	return "books"
}
