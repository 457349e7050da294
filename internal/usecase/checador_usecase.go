package usecase

import (
	"log"
	"sync"
	"time"

	"github.com/Malbrius/checadorccm/internal/apperror"
	"github.com/Malbrius/checadorccm/internal/foto"
	"github.com/Malbrius/checadorccm/internal/model"
	"github.com/Malbrius/checadorccm/internal/repository"
)

// Transicion es el resultado de aplicar la tabla de transiciones:
// qué evento toca y en qué estado queda el empleado.
type Transicion struct {
	Tipo        string `json:"tipo_registro"`
	NuevoEstado string `json:"nuevo_estado"`
}

// DeterminarTransicion es la tabla de transiciones del checador.
//
//	fuera      + entrada -> check_in  (trabajando)
//	en_break   + entrada -> break_in  (trabajando)
//	trabajando + salida  -> break_out (en_break) antes de la hora límite,
//	                        check_out (fuera) a partir de ella
//
// Cualquier otra combinación es una transición inválida con mensaje
// específico para el usuario. Es una función pura: recibe el estado, no
// lo lee de ningún lado.
func DeterminarTransicion(estadoActual, accion string, ahora time.Time, horaLimite string) (Transicion, error) {
	switch accion {
	case model.AccionEntrada:
		switch estadoActual {
		case model.EstadoFuera:
			return Transicion{Tipo: model.TipoCheckIn, NuevoEstado: model.EstadoTrabajando}, nil
		case model.EstadoEnBreak:
			return Transicion{Tipo: model.TipoBreakIn, NuevoEstado: model.EstadoTrabajando}, nil
		case model.EstadoTrabajando:
			return Transicion{}, apperror.New(apperror.CodeTransicionInvalida,
				"El empleado ya está trabajando. Use salida para registrar break o fin de jornada.")
		}
	case model.AccionSalida:
		switch estadoActual {
		case model.EstadoTrabajando:
			// Estrictamente antes de la hora límite la salida es break;
			// exactamente a la hora límite ya cuenta como fin de jornada.
			// La comparación es lexicográfica sobre "HH:MM".
			if ahora.Format("15:04") < horaLimite {
				return Transicion{Tipo: model.TipoBreakOut, NuevoEstado: model.EstadoEnBreak}, nil
			}
			return Transicion{Tipo: model.TipoCheckOut, NuevoEstado: model.EstadoFuera}, nil
		case model.EstadoFuera:
			return Transicion{}, apperror.New(apperror.CodeTransicionInvalida,
				"El empleado no está en horario de trabajo")
		case model.EstadoEnBreak:
			return Transicion{}, apperror.New(apperror.CodeTransicionInvalida,
				"El empleado ya está en break. Use entrada para regresar al trabajo.")
		}
	default:
		return Transicion{}, apperror.New(apperror.CodeTransicionInvalida, "Acción no válida")
	}
	return Transicion{}, apperror.New(apperror.CodeTransicionInvalida, "Estado no válido")
}

type ChecadorUsecase struct {
	repo       repository.ChecadorRepository
	empleados  *EmpleadoUsecase
	almacen    foto.Subidor
	horaLimite string
	reloj      func() time.Time

	// Un candado por empleado: derivar la transición y aplicarla deben
	// ser un solo paso atómico aunque dos kioscos manden al mismo tiempo
	mu       sync.Mutex
	candados map[string]*sync.Mutex
}

func NewChecadorUsecase(repo repository.ChecadorRepository, empleados *EmpleadoUsecase, almacen foto.Subidor, horaLimite string) *ChecadorUsecase {
	return &ChecadorUsecase{
		repo:       repo,
		empleados:  empleados,
		almacen:    almacen,
		horaLimite: horaLimite,
		reloj:      time.Now,
		candados:   make(map[string]*sync.Mutex),
	}
}

func (u *ChecadorUsecase) candado(numero string) *sync.Mutex {
	u.mu.Lock()
	defer u.mu.Unlock()
	c, ok := u.candados[numero]
	if !ok {
		c = &sync.Mutex{}
		u.candados[numero] = c
	}
	return c
}

// ObtenerEstado regresa el estado actual del empleado, creándolo en
// "fuera" si todavía no existe.
func (u *ChecadorUsecase) ObtenerEstado(numero string) (*model.EstadoEmpleado, error) {
	estado, err := u.repo.GetEstado(numero)
	if err != nil {
		log.Println("Error al obtener estado del empleado:", err)
		return nil, apperror.New(apperror.CodeInterno, "Error al obtener estado del empleado")
	}
	return estado, nil
}

// DeterminarTipoRegistro es el preview que el kiosco consulta antes de
// tomar la foto. No persiste nada (más allá de la creación perezosa del
// estado) y su resultado NUNCA se usa para el commit: Procesar vuelve a
// derivar la transición contra el estado vivo.
func (u *ChecadorUsecase) DeterminarTipoRegistro(numero, accion string) (Transicion, error) {
	if err := validarNumero(numero); err != nil {
		return Transicion{}, err
	}
	estado, err := u.ObtenerEstado(numero)
	if err != nil {
		return Transicion{}, err
	}
	return DeterminarTransicion(estado.EstadoActual, accion, u.reloj(), u.horaLimite)
}

type ResultadoChecador struct {
	Transicion
	FotoURL    string
	RegistroID uint
	FechaHora  time.Time
}

// Procesar es el registro completo: valida al empleado, vuelve a derivar
// la transición contra el estado vivo (bajo el candado del empleado), sube
// la foto y hasta entonces escribe bitácora + estado en una transacción.
// Si la subida falla en ambos canales no se escribe nada.
func (u *ChecadorUsecase) Procesar(numero, accion, fotoBase64, ip, userAgent string) (*ResultadoChecador, error) {
	// 1. Validar empleado
	if _, err := u.empleados.Validar(numero); err != nil {
		return nil, err
	}

	// 2. Validar y optimizar la foto antes de tomar el candado (puro CPU)
	data, err := foto.DecodificarBase64(fotoBase64)
	if err != nil {
		return nil, err
	}
	if _, err := foto.Validar(data); err != nil {
		return nil, err
	}
	data = foto.Redimensionar(data)

	// 3. Serializar por empleado
	candado := u.candado(numero)
	candado.Lock()
	defer candado.Unlock()

	estado, err := u.ObtenerEstado(numero)
	if err != nil {
		return nil, err
	}

	ahora := u.reloj()
	transicion, err := DeterminarTransicion(estado.EstadoActual, accion, ahora, u.horaLimite)
	if err != nil {
		return nil, err
	}

	// 4. Subir la foto ANTES de escribir: si fallan ambos canales el
	// estado y la bitácora quedan intactos
	url, err := u.almacen.Subir(foto.NombreArchivo(numero, ahora), data)
	if err != nil {
		return nil, err
	}

	// 5. Bitácora + estado, todo o nada
	registro := &model.RegistroChecador{
		NumeroEmpleado: numero,
		TipoRegistro:   transicion.Tipo,
		FechaHora:      ahora,
		FotoURL:        url,
		IPAddress:      ip,
		UserAgent:      userAgent,
	}
	if err := u.repo.Registrar(registro, transicion.NuevoEstado); err != nil {
		log.Println("Error al registrar checador:", err)
		return nil, apperror.New(apperror.CodeInterno, "Error al guardar el registro")
	}

	return &ResultadoChecador{
		Transicion: transicion,
		FotoURL:    url,
		RegistroID: registro.ID,
		FechaHora:  ahora,
	}, nil
}

// Historial regresa los últimos 10 registros del empleado, opcionalmente
// filtrados a un día (fecha en formato YYYY-MM-DD).
func (u *ChecadorUsecase) Historial(numero, fecha string) ([]model.RegistroChecador, error) {
	if err := validarNumero(numero); err != nil {
		return nil, err
	}

	if fecha != "" {
		if _, err := time.Parse("2006-01-02", fecha); err != nil {
			return nil, apperror.New(apperror.CodeValidacion, "Fecha inválida. Use el formato YYYY-MM-DD")
		}
	}

	registros, err := u.repo.GetHistorial(numero, fecha)
	if err != nil {
		log.Println("Error al obtener historial:", err)
		return nil, apperror.New(apperror.CodeInterno, "Error al obtener historial")
	}
	return registros, nil
}
