// Package model defines the core data types shared across the application.
package model

// Category is a user-facing vehicle classification (e.g. SUV, Sedan) used
// as the primary search filter.
type Category struct {
	Name string
	ID   int64
}

// CarModel is a vehicle line grouping multiple grades under one category.
type CarModel struct {
	Name         string
	CategoryName string
	ImageURL     string
	ID           int64
}
