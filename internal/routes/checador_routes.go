package routes

import (
	"github.com/Malbrius/checadorccm/config"
	"github.com/Malbrius/checadorccm/internal/foto"
	"github.com/Malbrius/checadorccm/internal/handler"
	"github.com/Malbrius/checadorccm/internal/repository"
	"github.com/Malbrius/checadorccm/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupChecadorRoutes(app *fiber.App, db *gorm.DB, cfg config.Checador) {
	empleadoRepo := repository.NewEmpleadoRepository(db)
	checadorRepo := repository.NewChecadorRepository(db)

	// FTP primero, SFTP de respaldo
	almacen := foto.NewAlmacen(
		foto.NewSubidorFTP(cfg),
		foto.NewSubidorSFTP(cfg),
	)

	empleadoUC := usecase.NewEmpleadoUsecase(empleadoRepo)
	checadorUC := usecase.NewChecadorUsecase(checadorRepo, empleadoUC, almacen, cfg.HoraLimiteJornada)

	empleadoHdl := handler.NewEmpleadoHandler(empleadoUC, checadorUC)
	checadorHdl := handler.NewChecadorHandler(checadorUC)

	api := app.Group("/api/checador")

	api.Post("/validar_empleado", empleadoHdl.Validar)
	api.Post("/registrar_empleado", empleadoHdl.Registrar)
	api.Post("/obtener_estado", checadorHdl.ObtenerEstado)
	api.Post("/procesar_checador", checadorHdl.Procesar)
	api.Get("/historial", checadorHdl.Historial)
}
