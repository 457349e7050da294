package handler

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"image"
	"image/png"
	"net/http/httptest"
	"testing"

	"github.com/Malbrius/checadorccm/internal/model"
	"github.com/Malbrius/checadorccm/internal/repository"
	"github.com/Malbrius/checadorccm/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type almacenStub struct {
	url string
}

func (a almacenStub) Subir(nombre string, data []byte) (string, error) {
	return a.url + nombre, nil
}

// App de prueba con sqlite en memoria y almacén de fotos falso
func nuevaAppPrueba(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("no se pudo abrir sqlite en memoria: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&model.Empleado{}, &model.EstadoEmpleado{}, &model.RegistroChecador{}); err != nil {
		t.Fatalf("error en migración: %v", err)
	}

	empleadoUC := usecase.NewEmpleadoUsecase(repository.NewEmpleadoRepository(db))
	checadorUC := usecase.NewChecadorUsecase(repository.NewChecadorRepository(db), empleadoUC, almacenStub{url: "http://fotos.local/"}, "17:00")

	empleadoHdl := NewEmpleadoHandler(empleadoUC, checadorUC)
	checadorHdl := NewChecadorHandler(checadorUC)

	app := fiber.New()
	api := app.Group("/api/checador")
	api.Post("/validar_empleado", empleadoHdl.Validar)
	api.Post("/registrar_empleado", empleadoHdl.Registrar)
	api.Post("/obtener_estado", checadorHdl.ObtenerEstado)
	api.Post("/procesar_checador", checadorHdl.Procesar)
	api.Get("/historial", checadorHdl.Historial)

	return app, db
}

func postJSON(t *testing.T, app *fiber.App, ruta string, cuerpo string) (int, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest("POST", ruta, bytes.NewBufferString(cuerpo))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "kiosco-prueba/1.0")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("error en request: %v", err)
	}
	defer resp.Body.Close()

	var payload map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("error al decodificar respuesta: %v", err)
	}
	return resp.StatusCode, payload
}

func fotoPruebaBase64(t *testing.T) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("error al generar PNG: %v", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestValidarEmpleadoDesconocidoResponde202(t *testing.T) {
	app, _ := nuevaAppPrueba(t)

	status, payload := postJSON(t, app, "/api/checador/validar_empleado", `{"numero_empleado":"90000001"}`)

	if status != fiber.StatusAccepted {
		t.Fatalf("se esperaba 202, se obtuvo %d", status)
	}
	if payload["success"] != true {
		t.Error("un desconocido registrable es un éxito suave, no un error")
	}
	if _, ok := payload["timestamp"]; !ok {
		t.Error("toda respuesta lleva timestamp")
	}

	data := payload["data"].(map[string]interface{})
	if data["requiere_registro"] != true || data["puede_crear"] != true || data["existe"] != false {
		t.Errorf("banderas inesperadas: %+v", data)
	}
}

func TestValidarEmpleadoFormatoInvalidoResponde400(t *testing.T) {
	app, _ := nuevaAppPrueba(t)

	status, payload := postJSON(t, app, "/api/checador/validar_empleado", `{"numero_empleado":"1234567"}`)

	if status != fiber.StatusBadRequest {
		t.Fatalf("se esperaba 400, se obtuvo %d", status)
	}
	if payload["success"] != false {
		t.Error("success debe ser false")
	}
	if _, ok := payload["error"]; !ok {
		t.Error("la respuesta de error lleva el mensaje en 'error'")
	}
}

func TestRegistrarYValidarEmpleado(t *testing.T) {
	app, _ := nuevaAppPrueba(t)

	status, payload := postJSON(t, app, "/api/checador/registrar_empleado",
		`{"numero_empleado":"90000001","nombre":"Juan Pérez"}`)
	if status != fiber.StatusOK {
		t.Fatalf("alta: se esperaba 200, se obtuvo %d (%v)", status, payload)
	}

	data := payload["data"].(map[string]interface{})
	estado := data["estado"].(map[string]interface{})
	if estado["estado_actual"] != model.EstadoFuera {
		t.Errorf("el estado inicial debe ser fuera: %v", estado["estado_actual"])
	}

	// Ahora el empleado valida con 200
	status, payload = postJSON(t, app, "/api/checador/validar_empleado", `{"numero_empleado":"90000001"}`)
	if status != fiber.StatusOK {
		t.Fatalf("validar: se esperaba 200, se obtuvo %d", status)
	}
	data = payload["data"].(map[string]interface{})
	if data["existe"] != true {
		t.Error("el empleado registrado debe existir")
	}

	// Alta duplicada responde 422
	status, _ = postJSON(t, app, "/api/checador/registrar_empleado",
		`{"numero_empleado":"90000001","nombre":"Otro Nombre"}`)
	if status != fiber.StatusUnprocessableEntity {
		t.Fatalf("duplicado: se esperaba 422, se obtuvo %d", status)
	}
}

func TestObtenerEstadoPreview(t *testing.T) {
	app, _ := nuevaAppPrueba(t)

	postJSON(t, app, "/api/checador/registrar_empleado",
		`{"numero_empleado":"90000001","nombre":"Juan Pérez"}`)

	status, payload := postJSON(t, app, "/api/checador/obtener_estado",
		`{"numero_empleado":"90000001","accion":"entrada"}`)
	if status != fiber.StatusOK {
		t.Fatalf("se esperaba 200, se obtuvo %d", status)
	}

	data := payload["data"].(map[string]interface{})
	if data["tipo_registro"] != model.TipoCheckIn {
		t.Errorf("se esperaba check_in, se obtuvo %v", data["tipo_registro"])
	}
	if data["nuevo_estado"] != model.EstadoTrabajando {
		t.Errorf("se esperaba trabajando, se obtuvo %v", data["nuevo_estado"])
	}
	if data["mensaje"] == "" {
		t.Error("el preview debe traer el mensaje para el kiosco")
	}

	// Campos incompletos
	status, _ = postJSON(t, app, "/api/checador/obtener_estado", `{"numero_empleado":"90000001"}`)
	if status != fiber.StatusBadRequest {
		t.Fatalf("se esperaba 400 por parámetros incompletos, se obtuvo %d", status)
	}
}

func TestProcesarChecadorCompleto(t *testing.T) {
	app, db := nuevaAppPrueba(t)

	postJSON(t, app, "/api/checador/registrar_empleado",
		`{"numero_empleado":"90000001","nombre":"Juan Pérez"}`)

	cuerpo, _ := json.Marshal(fiber.Map{
		"numero_empleado": "90000001",
		"accion":          "entrada",
		"foto_base64":     fotoPruebaBase64(t),
	})

	status, payload := postJSON(t, app, "/api/checador/procesar_checador", string(cuerpo))
	if status != fiber.StatusOK {
		t.Fatalf("se esperaba 200, se obtuvo %d (%v)", status, payload)
	}

	data := payload["data"].(map[string]interface{})
	if data["tipo_registro"] != model.TipoCheckIn {
		t.Errorf("se esperaba check_in, se obtuvo %v", data["tipo_registro"])
	}
	if data["foto_url"] == "" {
		t.Error("la respuesta debe traer la URL de la foto")
	}

	var registro model.RegistroChecador
	if err := db.First(&registro).Error; err != nil {
		t.Fatalf("el registro no se guardó: %v", err)
	}
	if registro.UserAgent == "" || registro.IPAddress == "" {
		t.Error("el registro debe guardar IP y user agent")
	}

	// Repetir la entrada: 422 porque ya está trabajando
	status, _ = postJSON(t, app, "/api/checador/procesar_checador", string(cuerpo))
	if status != fiber.StatusUnprocessableEntity {
		t.Fatalf("se esperaba 422 por doble entrada, se obtuvo %d", status)
	}
}

func TestProcesarChecadorCampoFaltante(t *testing.T) {
	app, _ := nuevaAppPrueba(t)

	status, payload := postJSON(t, app, "/api/checador/procesar_checador",
		`{"numero_empleado":"90000001","accion":"entrada"}`)
	if status != fiber.StatusBadRequest {
		t.Fatalf("se esperaba 400, se obtuvo %d", status)
	}
	if payload["error"] != "Campo requerido: foto_base64" {
		t.Errorf("mensaje inesperado: %v", payload["error"])
	}
}

func TestHistorialEndpoint(t *testing.T) {
	app, _ := nuevaAppPrueba(t)

	postJSON(t, app, "/api/checador/registrar_empleado",
		`{"numero_empleado":"90000001","nombre":"Juan Pérez"}`)

	cuerpo, _ := json.Marshal(fiber.Map{
		"numero_empleado": "90000001",
		"accion":          "entrada",
		"foto_base64":     fotoPruebaBase64(t),
	})
	postJSON(t, app, "/api/checador/procesar_checador", string(cuerpo))

	req := httptest.NewRequest("GET", "/api/checador/historial?numero_empleado=90000001", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("error en request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("se esperaba 200, se obtuvo %d", resp.StatusCode)
	}

	var payload map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("error al decodificar: %v", err)
	}
	historial := payload["data"].(map[string]interface{})["historial"].([]interface{})
	if len(historial) != 1 {
		t.Errorf("se esperaba 1 registro, hay %d", len(historial))
	}

	// Sin número de empleado: 400
	req = httptest.NewRequest("GET", "/api/checador/historial", nil)
	resp, err = app.Test(req, -1)
	if err != nil {
		t.Fatalf("error en request: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("se esperaba 400 sin número, se obtuvo %d", resp.StatusCode)
	}
}
