package service

import (
	"os"

	"bookshop/database"
	"bookshop/logger"

	"github.com/op/go-logging"
)

func setup() {
	logger.InitLogger(logging.DEBUG)
	dbPath := "test.db"
	os.Remove(dbPath)
	database.InitDB(dbPath)
}

func teardown() {
	db, _ := database.GetDB().DB()
	db.Close()
	os.Remove("test.db")
}
