package foto

import (
	"bytes"
	"fmt"
	"path"
	"time"

	"github.com/Malbrius/checadorccm/config"

	"github.com/jlaffaye/ftp"
)

// SubidorFTP es el canal principal de subida de fotos.
type SubidorFTP struct {
	cfg config.Checador
}

func NewSubidorFTP(cfg config.Checador) *SubidorFTP {
	return &SubidorFTP{cfg: cfg}
}

func (s *SubidorFTP) Subir(nombre string, data []byte) (string, error) {
	conn, err := ftp.Dial(
		fmt.Sprintf("%s:%d", s.cfg.FTPHost, s.cfg.FTPPort),
		ftp.DialWithTimeout(30*time.Second),
	)
	if err != nil {
		return "", fmt.Errorf("no se pudo conectar al servidor FTP: %w", err)
	}
	defer conn.Quit()

	if err := conn.Login(s.cfg.FTPUser, s.cfg.FTPPass); err != nil {
		return "", fmt.Errorf("error de autenticación FTP: %w", err)
	}

	rutaRemota := path.Join(s.cfg.FTPRutaRemota, nombre)
	if err := conn.Stor(rutaRemota, bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("error al subir archivo por FTP: %w", err)
	}

	return s.cfg.FotosBaseURL + nombre, nil
}
