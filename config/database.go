package config

import (
	"fmt"

	"github.com/Malbrius/checadorccm/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB(cfg Checador) {
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{
		// TranslateError convierte el error de llave duplicada de MySQL
		// en gorm.ErrDuplicatedKey, que es lo que revisa el registro de empleados
		TranslateError: true,
	})
	if err != nil {
		panic("¡No se pudo conectar a la base de datos!")
	}

	fmt.Println("¡Conexión a la base de datos exitosa!")

	// Auto Migration: crea las tablas a partir de los structs del folder model
	db.AutoMigrate(&model.Empleado{})
	db.AutoMigrate(&model.EstadoEmpleado{})
	db.AutoMigrate(&model.RegistroChecador{})

	DB = db
}
