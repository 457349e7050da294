package usecase

import (
	"errors"
	"log"
	"regexp"
	"strings"

	"github.com/Malbrius/checadorccm/internal/apperror"
	"github.com/Malbrius/checadorccm/internal/model"
	"github.com/Malbrius/checadorccm/internal/repository"

	"gorm.io/gorm"
)

var (
	reNumeroEmpleado = regexp.MustCompile(`^[0-9]{8}$`)
	reNombreEmpleado = regexp.MustCompile(`^[A-Za-z ÁÉÍÓÚáéíóúÑñ]+$`)
)

// validarNumero revisa el formato del número de empleado SIN tocar la base
// de datos. Los dos mensajes se distinguen porque el kiosco los muestra
// tal cual al usuario.
func validarNumero(numero string) error {
	if len(numero) != 8 {
		return apperror.New(apperror.CodeValidacion, "El número de empleado debe tener exactamente 8 caracteres")
	}
	if !reNumeroEmpleado.MatchString(numero) {
		return apperror.New(apperror.CodeValidacion, "El número de empleado solo debe contener números")
	}
	return nil
}

func validarNombre(nombre string) error {
	runas := []rune(nombre)
	if len(runas) < 2 || len(runas) > 100 {
		return apperror.New(apperror.CodeValidacion, "El nombre debe tener entre 2 y 100 caracteres")
	}
	if !reNombreEmpleado.MatchString(nombre) {
		return apperror.New(apperror.CodeValidacion, "El nombre solo debe contener letras y espacios")
	}
	return nil
}

type EmpleadoUsecase struct {
	repo repository.EmpleadoRepository
}

func NewEmpleadoUsecase(repo repository.EmpleadoRepository) *EmpleadoUsecase {
	return &EmpleadoUsecase{repo: repo}
}

// Validar busca un empleado activo por su número. Un número con formato
// inválido regresa error de validación; un número bien formado pero
// desconocido (o dado de baja) regresa requiere_registro, que el kiosco
// usa para ofrecer el alta en lugar de marcar error.
func (u *EmpleadoUsecase) Validar(numero string) (*model.Empleado, error) {
	if err := validarNumero(numero); err != nil {
		return nil, err
	}

	empleado, err := u.repo.GetActivoByNumero(numero)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(apperror.CodeRequiereRegistro, "Empleado no encontrado o inactivo")
		}
		log.Println("Error al validar empleado:", err)
		return nil, apperror.New(apperror.CodeInterno, "Error al validar empleado")
	}

	return empleado, nil
}

// Registrar da de alta un empleado nuevo junto con su estado inicial.
// Un número dado de baja NO se puede reutilizar: reactivarlo sería una
// operación administrativa aparte, no un efecto del alta.
func (u *EmpleadoUsecase) Registrar(numero, nombre string) (*model.Empleado, error) {
	if err := validarNumero(numero); err != nil {
		return nil, err
	}

	nombre = strings.TrimSpace(nombre)
	if err := validarNombre(nombre); err != nil {
		return nil, err
	}

	existe, err := u.repo.ExisteNumero(numero)
	if err != nil {
		log.Println("Error al consultar empleado:", err)
		return nil, apperror.New(apperror.CodeInterno, "Error al registrar empleado")
	}
	if existe {
		return nil, apperror.New(apperror.CodeConflicto, "El número de empleado ya existe")
	}

	empleado := &model.Empleado{
		NumeroEmpleado: numero,
		Nombre:         nombre,
		Activo:         true,
	}

	if err := u.repo.CreateConEstadoInicial(empleado); err != nil {
		// Dos altas simultáneas con el mismo número: la llave única
		// detiene a la segunda aunque ExisteNumero no la haya visto
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.New(apperror.CodeConflicto, "El número de empleado ya existe")
		}
		log.Println("Error al crear empleado:", err)
		return nil, apperror.New(apperror.CodeInterno, "Error al registrar empleado")
	}

	return empleado, nil
}
