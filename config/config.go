package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
)

// Helper para leer una variable de entorno con valor por defecto
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper para leer una variable de entorno como entero
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

var reHoraLimite = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// Checador agrupa toda la configuración del servicio.
// Nada de constantes mágicas en el código: la hora límite y los
// datos de subida de fotos se leen aquí una sola vez al arrancar.
type Checador struct {
	Puerto string

	// Base de datos (MySQL)
	DBUser string
	DBPass string
	DBHost string
	DBPort string
	DBName string

	// Hora límite de jornada en formato HH:MM.
	// Antes de esta hora una "salida" se interpreta como break,
	// a partir de ella como fin de jornada.
	HoraLimiteJornada string

	// Canal principal de subida de fotos (FTP)
	FTPHost       string
	FTPPort       int
	FTPUser       string
	FTPPass       string
	FTPRutaRemota string

	// Canal de respaldo (SFTP, mismas credenciales)
	SFTPPort int

	// URL pública base donde quedan visibles las fotos subidas
	FotosBaseURL string
}

func Load() (Checador, error) {
	cfg := Checador{
		Puerto: GetEnv("APP_PORT", "3000"),

		DBUser: GetEnv("DB_USER", "root"),
		DBPass: GetEnv("DB_PASS", ""),
		DBHost: GetEnv("DB_HOST", "127.0.0.1"),
		DBPort: GetEnv("DB_PORT", "3306"),
		DBName: GetEnv("DB_NAME", "checador_ccm"),

		HoraLimiteJornada: GetEnv("HORA_LIMITE_JORNADA", "17:00"),

		FTPHost:       GetEnv("FTP_HOST", ""),
		FTPPort:       GetEnvAsInt("FTP_PORT", 21),
		FTPUser:       GetEnv("FTP_USER", ""),
		FTPPass:       GetEnv("FTP_PASS", ""),
		FTPRutaRemota: GetEnv("FTP_RUTA_REMOTA", "/fotos/checador/"),

		SFTPPort: GetEnvAsInt("SFTP_PORT", 22),

		FotosBaseURL: GetEnv("FOTOS_BASE_URL", "http://localhost:3000/uploads/"),
	}

	if !reHoraLimite.MatchString(cfg.HoraLimiteJornada) {
		return Checador{}, fmt.Errorf("HORA_LIMITE_JORNADA inválida: %q (se espera HH:MM)", cfg.HoraLimiteJornada)
	}

	return cfg, nil
}

// DSN arma la cadena de conexión MySQL en el formato que espera GORM.
func (c Checador) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.DBUser, c.DBPass, c.DBHost, c.DBPort, c.DBName)
}
