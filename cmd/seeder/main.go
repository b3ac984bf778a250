package main

import (
	"fmt"
	"log"

	"asistencia-cosmos-backend/config"
	"asistencia-cosmos-backend/internal/database"

	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("Iniciando seeding de la base de datos...")

	// Script separado del servidor, carga .env por su cuenta
	if err := godotenv.Load(); err != nil {
		log.Println("Aviso: no hay archivo .env, se usan las variables de entorno del sistema.")
	}

	config.ConnectDB()

	fmt.Println("Ejecutando SeedAll...")
	database.SeedAll(config.DB)

	fmt.Println("Seeding completado.")
}
