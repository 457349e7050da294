package model

import "gorm.io/gorm"

type Empleado struct {
	gorm.Model
	NumeroEmpleado string `json:"numero_empleado" gorm:"column:numero_empleado;size:8;unique;not null"`
	Nombre         string `json:"nombre" gorm:"size:100;not null"`
	Activo         bool   `json:"activo" gorm:"default:true"`

	// Relaciones
	Estado    *EstadoEmpleado    `json:"estado,omitempty" gorm:"foreignKey:NumeroEmpleado;references:NumeroEmpleado"`
	Registros []RegistroChecador `json:"registros,omitempty" gorm:"foreignKey:NumeroEmpleado;references:NumeroEmpleado"`
}
