package service

import (
	"bookshop/database"
	"bookshop/database/model"

	"gorm.io/gorm"
)

// CatalogService serves the read-only catalog paths.
type CatalogService struct {
	reviewService ReviewService
}

// AllBooks returns the whole catalog keyed by ISBN, in insertion order as far
// as the map consumer cares. An empty catalog is a not-found condition.
func (s *CatalogService) AllBooks() (map[string]*model.BookView, error) {
	db := database.GetDB()

	var books []model.Book
	if err := db.Find(&books).Error; err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	views := make(map[string]*model.BookView, len(books))
	for _, book := range books {
		view, err := s.view(book)
		if err != nil {
			return nil, err
		}
		views[book.Isbn] = view
	}
	return views, nil
}

// GetByISBN returns a single book with its reviews.
func (s *CatalogService) GetByISBN(isbn string) (*model.BookView, error) {
	db := database.GetDB()

	var book model.Book
	if err := db.First(&book, "isbn = ?", isbn).Error; err != nil {
		return nil, err
	}
	return s.view(book)
}

// FindByAuthor returns books whose author matches exactly, ignoring case.
// Substring matches do not qualify.
func (s *CatalogService) FindByAuthor(author string) ([]*model.BookView, error) {
	return s.find("LOWER(author) = LOWER(?)", author)
}

// FindByTitle returns books whose title matches exactly, ignoring case.
func (s *CatalogService) FindByTitle(title string) ([]*model.BookView, error) {
	return s.find("LOWER(title) = LOWER(?)", title)
}

func (s *CatalogService) find(query string, arg string) ([]*model.BookView, error) {
	db := database.GetDB()

	var books []model.Book
	if err := db.Where(query, arg).Find(&books).Error; err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	views := make([]*model.BookView, 0, len(books))
	for _, book := range books {
		view, err := s.view(book)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *CatalogService) view(book model.Book) (*model.BookView, error) {
	reviews, err := s.reviewService.ReviewsFor(book.Isbn)
	if err != nil {
		return nil, err
	}
	return &model.BookView{
		Isbn:    book.Isbn,
		Title:   book.Title,
		Author:  book.Author,
		Reviews: reviews,
	}, nil
}
