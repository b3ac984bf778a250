package main

import (
	"fmt"

	"asistencia-cosmos-backend/config"
	"asistencia-cosmos-backend/internal/routes"
	"asistencia-cosmos-backend/internal/sheets"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("1. Iniciando aplicación... cargando .env...")
	if err := godotenv.Load(); err != nil {
		fmt.Println("Aviso: no hay archivo .env, se usan las variables de entorno del sistema.")
	}

	fmt.Println("2. Conectando a la base de datos...")
	config.ConnectDB()
	fmt.Println("3. Base de datos conectada. Preparando rutas...")

	app := fiber.New()

	// Middleware global
	app.Use(cors.New())    // El frontend corre en otro origen
	app.Use(logger.New())  // Log de cada request en consola
	app.Use(recover.New()) // Un panic en un handler no tumba el servidor

	// Cliente único del espejo en Sheets: comparte token y cache de cabeceras
	sheetsClient := sheets.New(sheets.ConfigFromEnv())
	if !sheetsClient.Configured() {
		fmt.Println("Aviso: Google Sheets sin configurar, el espejo queda desactivado.")
	}

	routes.SetupAuthRoutes(app, config.DB)
	routes.SetupTrabajadorRoutes(app, config.DB)
	routes.SetupRegistroRoutes(app, config.DB, sheetsClient)
	routes.SetupReporteRoutes(app, config.DB)
	routes.SetupDashboardRoutes(app, config.DB)
	routes.SetupSyncRoutes(app, config.DB, sheetsClient)

	port := config.GetEnv("PORT", "3000")
	fmt.Println("4. Servidor listo. Escuchando en el puerto :" + port)
	app.Listen(":" + port)
}
