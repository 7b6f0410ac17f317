// Package model defines the persisted entities of the bookshop service.
package model

// User is a registered customer. Passwords are stored as bcrypt hashes.
type User struct {
	Id       int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"`
}

// Book is a catalog entry keyed by ISBN.
type Book struct {
	Isbn   string `json:"isbn" gorm:"primaryKey"`
	Title  string `json:"title" gorm:"not null;index"`
	Author string `json:"author" gorm:"not null;index"`
}

// Review is a customer's review of a book. The composite key enforces at
// most one review per (isbn, username) pair.
type Review struct {
	Isbn     string `json:"isbn" gorm:"primaryKey"`
	Username string `json:"username" gorm:"primaryKey"`
	Content  string `json:"content" gorm:"not null"`
}

// BookView is the API representation of a book with its reviews attached.
type BookView struct {
	Isbn    string            `json:"isbn"`
	Title   string            `json:"title"`
	Author  string            `json:"author"`
	Reviews map[string]string `json:"reviews"`
}
