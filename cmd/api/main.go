package main

import (
	"fmt"

	"github.com/Malbrius/checadorccm/config"
	"github.com/Malbrius/checadorccm/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("1. Iniciando aplicación... Cargando .env...")
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: No se encontró archivo .env, usando variables de entorno del sistema.")
	}

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	fmt.Println("2. Conectando a la base de datos...")
	config.ConnectDB(cfg)
	fmt.Println("3. ¡Base de datos conectada! Preparando rutas...")

	app := fiber.New()

	// Middleware global
	app.Use(cors.New())   // El kiosco corre en otro origen
	app.Use(logger.New()) // Log de requests en la terminal

	routes.SetupChecadorRoutes(app, config.DB, cfg)

	fmt.Println("4. ¡Servidor listo! Escuchando en el puerto :" + cfg.Puerto)
	app.Listen(":" + cfg.Puerto)
}
