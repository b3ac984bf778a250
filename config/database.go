package config

import (
	"fmt"

	"asistencia-cosmos-backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	// Formato: user:password@tcp(host:puerto)/dbname?charset=utf8mb4&parseTime=True&loc=Local
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		GetEnv("DB_USER", "root"),
		GetEnv("DB_PASSWORD", ""),
		GetEnv("DB_HOST", "127.0.0.1"),
		GetEnv("DB_PORT", "3306"),
		GetEnv("DB_NAME", "asistencia_cosmos"),
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("No se pudo conectar a la base de datos: " + err.Error())
	}

	// Auto Migration: crea las tablas a partir de los structs en internal/model
	db.AutoMigrate(&model.Trabajador{})
	db.AutoMigrate(&model.Admin{})
	db.AutoMigrate(&model.Registro{})
	db.AutoMigrate(&model.PendingSync{})
	db.AutoMigrate(&model.AuditLog{})

	DB = db
}
