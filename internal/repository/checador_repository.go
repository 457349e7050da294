package repository

import (
	"time"

	"github.com/Malbrius/checadorccm/internal/model"

	"gorm.io/gorm"
)

type ChecadorRepository interface {
	GetEstado(numero string) (*model.EstadoEmpleado, error)
	Registrar(registro *model.RegistroChecador, nuevoEstado string) error
	GetHistorial(numero string, fecha string) ([]model.RegistroChecador, error)
}

type checadorRepository struct {
	db *gorm.DB
}

func NewChecadorRepository(db *gorm.DB) ChecadorRepository {
	return &checadorRepository{db}
}

// GetEstado regresa el estado actual del empleado. Si todavía no tiene
// renglón (empleado recién migrado), lo crea en "fuera" con todos los
// timestamps en null. FirstOrCreate hace la inicialización idempotente.
func (r *checadorRepository) GetEstado(numero string) (*model.EstadoEmpleado, error) {
	var estado model.EstadoEmpleado
	err := r.db.Where(model.EstadoEmpleado{NumeroEmpleado: numero}).
		Attrs(model.EstadoEmpleado{EstadoActual: model.EstadoFuera}).
		FirstOrCreate(&estado).Error
	if err != nil {
		return nil, err
	}
	return &estado, nil
}

// Registrar guarda el evento en la bitácora y actualiza el estado del
// empleado en una sola transacción: o pasan las dos cosas o ninguna.
func (r *checadorRepository) Registrar(registro *model.RegistroChecador, nuevoEstado string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(registro).Error; err != nil {
			return err
		}

		// El timestamp "ultimo_*" que se actualiza depende del tipo de registro
		campos := map[string]interface{}{
			"estado_actual": nuevoEstado,
		}
		switch registro.TipoRegistro {
		case model.TipoCheckIn:
			campos["ultimo_check_in"] = registro.FechaHora
		case model.TipoCheckOut:
			campos["ultimo_check_out"] = registro.FechaHora
		case model.TipoBreakOut:
			campos["ultimo_break_out"] = registro.FechaHora
		case model.TipoBreakIn:
			campos["ultimo_break_in"] = registro.FechaHora
		}

		return tx.Model(&model.EstadoEmpleado{}).
			Where("numero_empleado = ?", registro.NumeroEmpleado).
			Updates(campos).Error
	})
}

// GetHistorial regresa los últimos registros del empleado, del más reciente
// al más viejo, máximo 10. Si viene fecha (YYYY-MM-DD) filtra a ese día.
func (r *checadorRepository) GetHistorial(numero string, fecha string) ([]model.RegistroChecador, error) {
	var registros []model.RegistroChecador
	query := r.db.Where("numero_empleado = ?", numero)

	if fecha != "" {
		dia, err := time.ParseInLocation("2006-01-02", fecha, time.Local)
		if err != nil {
			return nil, err
		}
		query = query.Where("fecha_hora >= ? AND fecha_hora < ?", dia, dia.AddDate(0, 0, 1))
	}

	err := query.Order("fecha_hora desc").Limit(10).Find(&registros).Error
	return registros, err
}
