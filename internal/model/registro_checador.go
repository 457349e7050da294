package model

import (
	"time"

	"gorm.io/gorm"
)

// RegistroChecador es la bitácora de eventos. Solo se insertan renglones,
// nunca se actualizan ni se borran.
type RegistroChecador struct {
	gorm.Model
	NumeroEmpleado string    `json:"numero_empleado" gorm:"column:numero_empleado;size:8;not null;index"`
	TipoRegistro   string    `json:"tipo_registro" gorm:"size:20;not null"` // check_in/check_out/break_out/break_in
	FechaHora      time.Time `json:"fecha_hora" gorm:"not null;index"`
	FotoURL        string    `json:"foto_url" gorm:"size:255"`
	IPAddress      string    `json:"ip_address" gorm:"size:45"`
	UserAgent      string    `json:"user_agent" gorm:"size:255"`
}
