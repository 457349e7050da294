package repository

import (
	"github.com/Malbrius/checadorccm/internal/model"

	"gorm.io/gorm"
)

type EmpleadoRepository interface {
	GetActivoByNumero(numero string) (*model.Empleado, error)
	ExisteNumero(numero string) (bool, error)
	CreateConEstadoInicial(empleado *model.Empleado) error
}

type empleadoRepository struct {
	db *gorm.DB
}

func NewEmpleadoRepository(db *gorm.DB) EmpleadoRepository {
	return &empleadoRepository{db}
}

func (r *empleadoRepository) GetActivoByNumero(numero string) (*model.Empleado, error) {
	var empleado model.Empleado
	err := r.db.Where("numero_empleado = ? AND activo = ?", numero, true).First(&empleado).Error
	if err != nil {
		return nil, err
	}
	return &empleado, nil
}

// ExisteNumero revisa si el número ya está ocupado, activo o no.
// Un empleado dado de baja conserva su número.
func (r *empleadoRepository) ExisteNumero(numero string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Empleado{}).Where("numero_empleado = ?", numero).Count(&count).Error
	return count > 0, err
}

// CreateConEstadoInicial da de alta al empleado junto con su estado inicial
// (fuera, sin timestamps) en una sola transacción. Si dos altas compiten por
// el mismo número, la llave única hace que la segunda falle con
// gorm.ErrDuplicatedKey en lugar de duplicar el registro.
func (r *empleadoRepository) CreateConEstadoInicial(empleado *model.Empleado) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(empleado).Error; err != nil {
			return err
		}
		estado := model.EstadoEmpleado{
			NumeroEmpleado: empleado.NumeroEmpleado,
			EstadoActual:   model.EstadoFuera,
		}
		return tx.Create(&estado).Error
	})
}
