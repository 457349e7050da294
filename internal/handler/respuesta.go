package handler

import (
	"time"

	"github.com/Malbrius/checadorccm/internal/apperror"

	"github.com/gofiber/fiber/v2"
)

const formatoTimestamp = "2006-01-02 15:04:05"

// Toda respuesta de la API lleva el mismo sobre:
// {success, data|error, timestamp}
func responderExito(c *fiber.Ctx, codigo int, data interface{}) error {
	return c.Status(codigo).JSON(fiber.Map{
		"success":   true,
		"data":      data,
		"timestamp": time.Now().Format(formatoTimestamp),
	})
}

func responderErrorMensaje(c *fiber.Ctx, codigo int, mensaje string) error {
	return c.Status(codigo).JSON(fiber.Map{
		"success":   false,
		"error":     mensaje,
		"timestamp": time.Now().Format(formatoTimestamp),
	})
}

func estatusHTTP(code apperror.Code) int {
	switch code {
	case apperror.CodeValidacion:
		return fiber.StatusBadRequest
	case apperror.CodeConflicto, apperror.CodeTransicionInvalida:
		return fiber.StatusUnprocessableEntity
	case apperror.CodeRequiereRegistro:
		// Fuera de validar_empleado (que lo convierte en 202) un empleado
		// desconocido sí es un error duro
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

func responderError(c *fiber.Ctx, err error) error {
	return responderErrorMensaje(c, estatusHTTP(apperror.GetCode(err)), err.Error())
}
