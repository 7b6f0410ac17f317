// Package database manages the sqlite-backed store for users, books and reviews.
package database

import (
	"io/fs"
	"log"
	"os"
	"path"

	"bookshop/config"
	"bookshop/database/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

func initModels() error {
	models := []any{
		&model.User{},
		&model.Book{},
		&model.Review{},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			log.Printf("Error auto migrating model: %v", err)
			return err
		}
	}
	return nil
}

// initBooks seeds the catalog on first start. The service treats the catalog
// as a pre-populated data source; books are never mutated except for reviews.
func initBooks() error {
	empty, err := isTableEmpty("books")
	if err != nil {
		log.Printf("Error checking if books table is empty: %v", err)
		return err
	}
	if !empty {
		return nil
	}

	books := []model.Book{
		{Isbn: "1", Title: "Things Fall Apart", Author: "Chinua Achebe"},
		{Isbn: "2", Title: "Fairy tales", Author: "Hans Christian Andersen"},
		{Isbn: "3", Title: "The Divine Comedy", Author: "Dante Alighieri"},
		{Isbn: "4", Title: "The Epic Of Gilgamesh", Author: "Unknown"},
		{Isbn: "5", Title: "The Book Of Job", Author: "Unknown"},
		{Isbn: "6", Title: "One Thousand and One Nights", Author: "Unknown"},
		{Isbn: "7", Title: "Njál's Saga", Author: "Unknown"},
		{Isbn: "8", Title: "Pride and Prejudice", Author: "Jane Austen"},
		{Isbn: "9", Title: "Le Père Goriot", Author: "Honoré de Balzac"},
		{Isbn: "10", Title: "Molloy, Malone Dies, The Unnamable, the trilogy", Author: "Samuel Beckett"},
	}
	return db.Create(&books).Error
}

func isTableEmpty(tableName string) (bool, error) {
	var count int64
	err := db.Table(tableName).Count(&count).Error
	return count == 0, err
}

func InitDB(dbPath string) error {
	dir := path.Dir(dbPath)
	err := os.MkdirAll(dir, fs.ModePerm)
	if err != nil {
		return err
	}

	var gormLogger logger.Interface

	if config.IsDebug() {
		gormLogger = logger.Default
	} else {
		gormLogger = logger.Discard
	}

	c := &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
		TranslateError:         true,
	}

	dsn := dbPath + "?cache=shared&_journal_mode=WAL&_synchronous=NORMAL"
	db, err = gorm.Open(sqlite.Open(dsn), c)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	_, err = sqlDB.Exec("PRAGMA foreign_keys = ON;")
	if err != nil {
		return err
	}

	// Single writer: racing review upserts for the same ISBN queue up
	// instead of failing with a busy database.
	sqlDB.SetMaxOpenConns(1)

	if err := initModels(); err != nil {
		return err
	}
	if err := initBooks(); err != nil {
		return err
	}

	return nil
}

func CloseDB() error {
	if db != nil {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}

func GetDB() *gorm.DB {
	return db
}

func IsNotFound(err error) bool {
	return err == gorm.ErrRecordNotFound
}
