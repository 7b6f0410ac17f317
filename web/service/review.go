package service

import (
	"errors"

	"bookshop/database"
	"bookshop/database/model"

	"gorm.io/gorm/clause"
)

var (
	ErrReviewNotFound = errors.New("review not found")
	ErrNoReviews      = errors.New("no reviews for this book")
)

// ReviewService enforces the one-review-per-(isbn, username) ownership rule.
type ReviewService struct{}

// Upsert writes the caller's review for a book, overwriting any previous
// review by the same user, and returns the book's full reviews map.
func (s *ReviewService) Upsert(isbn string, username string, content string) (map[string]string, error) {
	db := database.GetDB()

	if err := db.First(&model.Book{}, "isbn = ?", isbn).Error; err != nil {
		return nil, err
	}

	review := &model.Review{
		Isbn:     isbn,
		Username: username,
		Content:  content,
	}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "isbn"}, {Name: "username"}},
		DoUpdates: clause.AssignmentColumns([]string{"content"}),
	}).Create(review).Error
	if err != nil {
		return nil, err
	}

	return s.ReviewsFor(isbn)
}

// Delete removes the caller's own review and returns the remaining reviews.
func (s *ReviewService) Delete(isbn string, username string) (map[string]string, error) {
	db := database.GetDB()

	if err := db.First(&model.Book{}, "isbn = ?", isbn).Error; err != nil {
		return nil, err
	}

	result := db.Where("isbn = ? AND username = ?", isbn, username).Delete(&model.Review{})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrReviewNotFound
	}

	return s.ReviewsFor(isbn)
}

// Reviews returns a book's reviews for the public read path. A book without
// reviews is reported as ErrNoReviews.
func (s *ReviewService) Reviews(isbn string) (map[string]string, error) {
	db := database.GetDB()

	if err := db.First(&model.Book{}, "isbn = ?", isbn).Error; err != nil {
		return nil, err
	}

	reviews, err := s.ReviewsFor(isbn)
	if err != nil {
		return nil, err
	}
	if len(reviews) == 0 {
		return nil, ErrNoReviews
	}
	return reviews, nil
}

// ReviewsFor loads the reviews map for a book, empty when none exist.
func (s *ReviewService) ReviewsFor(isbn string) (map[string]string, error) {
	db := database.GetDB()

	var rows []model.Review
	if err := db.Where("isbn = ?", isbn).Find(&rows).Error; err != nil {
		return nil, err
	}

	reviews := make(map[string]string, len(rows))
	for _, row := range rows {
		reviews[row.Username] = row.Content
	}
	return reviews, nil
}
