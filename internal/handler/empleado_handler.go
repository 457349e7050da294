package handler

import (
	"github.com/Malbrius/checadorccm/internal/apperror"
	"github.com/Malbrius/checadorccm/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type EmpleadoHandler struct {
	usecase  *usecase.EmpleadoUsecase
	checador *usecase.ChecadorUsecase // para anexar el estado actual en las respuestas
}

func NewEmpleadoHandler(u *usecase.EmpleadoUsecase, checador *usecase.ChecadorUsecase) *EmpleadoHandler {
	return &EmpleadoHandler{usecase: u, checador: checador}
}

func (h *EmpleadoHandler) Validar(c *fiber.Ctx) error {
	var input struct {
		NumeroEmpleado string `json:"numero_empleado"`
	}
	if err := c.BodyParser(&input); err != nil {
		return responderErrorMensaje(c, fiber.StatusBadRequest, "JSON inválido")
	}
	if input.NumeroEmpleado == "" {
		return responderErrorMensaje(c, fiber.StatusBadRequest, "Número de empleado requerido")
	}

	empleado, err := h.usecase.Validar(input.NumeroEmpleado)
	if err != nil {
		// Número bien formado pero desconocido: 202 con success true,
		// el kiosco abre la pantalla de registro
		if apperror.GetCode(err) == apperror.CodeRequiereRegistro {
			return responderExito(c, fiber.StatusAccepted, fiber.Map{
				"existe":            false,
				"puede_crear":       true,
				"numero_empleado":   input.NumeroEmpleado,
				"mensaje":           "Empleado no encontrado. Se puede registrar nuevo empleado.",
				"requiere_registro": true,
			})
		}
		return responderError(c, err)
	}

	estado, err := h.checador.ObtenerEstado(empleado.NumeroEmpleado)
	if err != nil {
		return responderError(c, err)
	}

	return responderExito(c, fiber.StatusOK, fiber.Map{
		"empleado": empleado,
		"estado":   estado,
		"existe":   true,
	})
}

func (h *EmpleadoHandler) Registrar(c *fiber.Ctx) error {
	var input struct {
		NumeroEmpleado string `json:"numero_empleado"`
		Nombre         string `json:"nombre"`
	}
	if err := c.BodyParser(&input); err != nil {
		return responderErrorMensaje(c, fiber.StatusBadRequest, "JSON inválido")
	}
	if input.NumeroEmpleado == "" || input.Nombre == "" {
		return responderErrorMensaje(c, fiber.StatusBadRequest, "Número de empleado y nombre son requeridos")
	}

	empleado, err := h.usecase.Registrar(input.NumeroEmpleado, input.Nombre)
	if err != nil {
		return responderError(c, err)
	}

	estado, err := h.checador.ObtenerEstado(empleado.NumeroEmpleado)
	if err != nil {
		return responderError(c, err)
	}

	return responderExito(c, fiber.StatusOK, fiber.Map{
		"empleado": empleado,
		"estado":   estado,
	})
}
