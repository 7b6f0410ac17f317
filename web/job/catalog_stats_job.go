// Package job holds background jobs scheduled by the web server.
package job

import (
	"bookshop/database"
	"bookshop/database/model"
	"bookshop/logger"
)

// CatalogStatsJob periodically logs catalog and directory counters.
type CatalogStatsJob struct{}

func NewCatalogStatsJob() *CatalogStatsJob {
	return new(CatalogStatsJob)
}

// Run implements cron.Job.
func (j *CatalogStatsJob) Run() {
	db := database.GetDB()

	var users, books, reviews int64
	if err := db.Model(model.User{}).Count(&users).Error; err != nil {
		logger.Warning("stats job count users err:", err)
		return
	}
	if err := db.Model(model.Book{}).Count(&books).Error; err != nil {
		logger.Warning("stats job count books err:", err)
		return
	}
	if err := db.Model(model.Review{}).Count(&reviews).Error; err != nil {
		logger.Warning("stats job count reviews err:", err)
		return
	}

	logger.Infof("catalog stats: %d books, %d reviews, %d registered users", books, reviews, users)
}
