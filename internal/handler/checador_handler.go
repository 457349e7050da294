package handler

import (
	"github.com/Malbrius/checadorccm/internal/model"
	"github.com/Malbrius/checadorccm/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type ChecadorHandler struct {
	usecase *usecase.ChecadorUsecase
}

func NewChecadorHandler(u *usecase.ChecadorUsecase) *ChecadorHandler {
	return &ChecadorHandler{usecase: u}
}

// Mensaje que ve el empleado en el kiosco según el tipo de registro
func mensajeTipoRegistro(tipo string) string {
	switch tipo {
	case model.TipoCheckIn:
		return "Entrada de jornada registrada exitosamente"
	case model.TipoCheckOut:
		return "Salida de jornada registrada exitosamente"
	case model.TipoBreakOut:
		return "Salida de break registrada exitosamente"
	case model.TipoBreakIn:
		return "Regreso de break registrado exitosamente"
	default:
		return "Registro completado"
	}
}

// ObtenerEstado es el preview: le dice al kiosco qué registro aplicaría
// ahorita, para mostrar el mensaje antes de tomar la foto.
func (h *ChecadorHandler) ObtenerEstado(c *fiber.Ctx) error {
	var input struct {
		NumeroEmpleado string `json:"numero_empleado"`
		Accion         string `json:"accion"`
	}
	if err := c.BodyParser(&input); err != nil {
		return responderErrorMensaje(c, fiber.StatusBadRequest, "JSON inválido")
	}
	if input.NumeroEmpleado == "" || input.Accion == "" {
		return responderErrorMensaje(c, fiber.StatusBadRequest, "Parámetros incompletos")
	}

	transicion, err := h.usecase.DeterminarTipoRegistro(input.NumeroEmpleado, input.Accion)
	if err != nil {
		return responderError(c, err)
	}

	return responderExito(c, fiber.StatusOK, fiber.Map{
		"tipo_registro": transicion.Tipo,
		"nuevo_estado":  transicion.NuevoEstado,
		"mensaje":       mensajeTipoRegistro(transicion.Tipo),
	})
}

// Procesar es el registro completo con foto.
func (h *ChecadorHandler) Procesar(c *fiber.Ctx) error {
	var input struct {
		NumeroEmpleado string `json:"numero_empleado"`
		Accion         string `json:"accion"`
		FotoBase64     string `json:"foto_base64"`
	}
	if err := c.BodyParser(&input); err != nil {
		return responderErrorMensaje(c, fiber.StatusBadRequest, "JSON inválido")
	}

	// Campos requeridos, con el nombre del campo en el mensaje
	switch {
	case input.NumeroEmpleado == "":
		return responderErrorMensaje(c, fiber.StatusBadRequest, "Campo requerido: numero_empleado")
	case input.Accion == "":
		return responderErrorMensaje(c, fiber.StatusBadRequest, "Campo requerido: accion")
	case input.FotoBase64 == "":
		return responderErrorMensaje(c, fiber.StatusBadRequest, "Campo requerido: foto_base64")
	}

	resultado, err := h.usecase.Procesar(
		input.NumeroEmpleado,
		input.Accion,
		input.FotoBase64,
		c.IP(),
		c.Get("User-Agent"),
	)
	if err != nil {
		return responderError(c, err)
	}

	return responderExito(c, fiber.StatusOK, fiber.Map{
		"mensaje":       mensajeTipoRegistro(resultado.Tipo),
		"tipo_registro": resultado.Tipo,
		"nuevo_estado":  resultado.NuevoEstado,
		"foto_url":      resultado.FotoURL,
		"timestamp":     resultado.FechaHora.Format(formatoTimestamp),
	})
}

func (h *ChecadorHandler) Historial(c *fiber.Ctx) error {
	numero := c.Query("numero_empleado")
	fecha := c.Query("fecha")

	if numero == "" {
		return responderErrorMensaje(c, fiber.StatusBadRequest, "Número de empleado requerido")
	}

	historial, err := h.usecase.Historial(numero, fecha)
	if err != nil {
		return responderError(c, err)
	}

	return responderExito(c, fiber.StatusOK, fiber.Map{
		"historial": historial,
	})
}
