package main

import (
	"fmt"
	"log"

	"github.com/Malbrius/checadorccm/config"
	"github.com/Malbrius/checadorccm/internal/database"

	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("🌱 Iniciando seeding de la base de datos...")

	// Cargar .env manualmente porque este es un script aparte
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No se encontró archivo .env, usando variables de entorno del sistema.")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	config.ConnectDB(cfg)

	fmt.Println("🚀 Ejecutando SeedAll...")
	database.SeedAll(config.DB)

	fmt.Println("✅ ¡Seeding terminado!")
}
