// file: database/connect.go
package database

import (
	"log"
	"os"
	"time"

	"github.com/bhvym-sudo/AlgoNetHackathonPortal/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Connect opens the shared pooled connection. Called once from main; every
// handler goes through the same *gorm.DB (no per-request reconnect).
func Connect() {
	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		dsn = "root:123456@tcp(localhost:3306)/hackathon?charset=utf8mb4&parseTime=True&loc=Local"
	}

	var err error
	// TranslateError 让唯一键冲突映射为 gorm.ErrDuplicatedKey，ID 分配重试依赖它
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		log.Fatal("Failed to get underlying sql.DB:", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	// 避免 MySQL wait_timeout 掐断长连接
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("Database connection successfully established and connection pool configured.")
}

func MigrateTables() {
	err := DB.AutoMigrate(
		&models.Team{},
		&models.Problem{},
		&models.EventSettings{},
		&models.Submission{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}
	log.Println("Database migration completed.")
}
