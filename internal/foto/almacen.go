package foto

import (
	"log"

	"github.com/Malbrius/checadorccm/internal/apperror"
)

// Subidor es la capacidad de subir una foto y regresar su URL pública.
type Subidor interface {
	Subir(nombre string, data []byte) (string, error)
}

// Almacen intenta los canales de subida en orden (FTP primero, SFTP de
// respaldo) y se queda con el primero que funcione. No hay más reintentos
// que ese: si fallan todos los canales, falla la operación completa.
type Almacen struct {
	subidores []Subidor
}

func NewAlmacen(subidores ...Subidor) *Almacen {
	return &Almacen{subidores: subidores}
}

func (a *Almacen) Subir(nombre string, data []byte) (string, error) {
	for _, s := range a.subidores {
		url, err := s.Subir(nombre, data)
		if err != nil {
			log.Println("Error al subir foto:", err)
			continue
		}
		return url, nil
	}
	return "", apperror.New(apperror.CodeSubidaFoto, "Error al subir la imagen al servidor remoto")
}
