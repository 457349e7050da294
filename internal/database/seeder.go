package database

import (
	"fmt"

	"github.com/Malbrius/checadorccm/internal/model"

	"gorm.io/gorm"
)

// SeedAll carga empleados de prueba con su estado inicial. Es idempotente:
// si el empleado ya existe no lo toca.
func SeedAll(db *gorm.DB) {
	empleados := []model.Empleado{
		{NumeroEmpleado: "90000001", Nombre: "Juan Pérez", Activo: true},
		{NumeroEmpleado: "90000002", Nombre: "María García", Activo: true},
		{NumeroEmpleado: "90000003", Nombre: "Luis Hernández", Activo: true},
	}

	for _, e := range empleados {
		var existente model.Empleado
		err := db.Where("numero_empleado = ?", e.NumeroEmpleado).First(&existente).Error
		if err == nil {
			fmt.Printf("Empleado %s ya existe, saltando...\n", e.NumeroEmpleado)
			continue
		}

		if err := db.Create(&e).Error; err != nil {
			fmt.Printf("Error al crear empleado %s: %v\n", e.NumeroEmpleado, err)
			continue
		}

		estado := model.EstadoEmpleado{
			NumeroEmpleado: e.NumeroEmpleado,
			EstadoActual:   model.EstadoFuera,
		}
		if err := db.Create(&estado).Error; err != nil {
			fmt.Printf("Error al crear estado inicial de %s: %v\n", e.NumeroEmpleado, err)
			continue
		}

		fmt.Printf("Empleado %s (%s) creado\n", e.NumeroEmpleado, e.Nombre)
	}
}
