package model

import (
	"time"

	"gorm.io/gorm"
)

// Estados posibles de un empleado
const (
	EstadoFuera      = "fuera"
	EstadoTrabajando = "trabajando"
	EstadoEnBreak    = "en_break"
)

// Tipos de registro del checador
const (
	TipoCheckIn  = "check_in"
	TipoCheckOut = "check_out"
	TipoBreakOut = "break_out"
	TipoBreakIn  = "break_in"
)

// Acciones que puede solicitar el empleado desde el kiosco
const (
	AccionEntrada = "entrada"
	AccionSalida  = "salida"
)

// EstadoEmpleado guarda el estado actual de cada empleado (un renglón por
// empleado). Solo el flujo de commit del checador lo modifica.
type EstadoEmpleado struct {
	gorm.Model
	NumeroEmpleado string     `json:"numero_empleado" gorm:"column:numero_empleado;size:8;unique;not null"`
	EstadoActual   string     `json:"estado_actual" gorm:"size:20;not null;default:fuera"` // fuera/trabajando/en_break
	UltimoCheckIn  *time.Time `json:"ultimo_check_in"`
	UltimoCheckOut *time.Time `json:"ultimo_check_out"`
	UltimoBreakOut *time.Time `json:"ultimo_break_out"`
	UltimoBreakIn  *time.Time `json:"ultimo_break_in"`
}
