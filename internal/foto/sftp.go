package foto

import (
	"fmt"
	"path"
	"time"

	"github.com/Malbrius/checadorccm/config"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
)

// SubidorSFTP es el canal de respaldo. Usa el mismo servidor y las mismas
// credenciales que el FTP, solo cambia el protocolo y el puerto.
type SubidorSFTP struct {
	cfg config.Checador
}

func NewSubidorSFTP(cfg config.Checador) *SubidorSFTP {
	return &SubidorSFTP{cfg: cfg}
}

func (s *SubidorSFTP) Subir(nombre string, data []byte) (string, error) {
	configSSH := &ssh.ClientConfig{
		User: s.cfg.FTPUser,
		Auth: []ssh.AuthMethod{
			ssh.Password(s.cfg.FTPPass),
		},
		// El servidor de fotos vive en la red interna
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         30 * time.Second,
	}

	conexion, err := ssh.Dial("tcp", fmt.Sprintf("%s:%d", s.cfg.FTPHost, s.cfg.SFTPPort), configSSH)
	if err != nil {
		return "", fmt.Errorf("no se pudo conectar al servidor SFTP: %w", err)
	}
	defer conexion.Close()

	cliente, err := sftp.NewClient(conexion)
	if err != nil {
		return "", fmt.Errorf("error al inicializar SFTP: %w", err)
	}
	defer cliente.Close()

	archivo, err := cliente.Create(path.Join(s.cfg.FTPRutaRemota, nombre))
	if err != nil {
		return "", fmt.Errorf("error al crear archivo remoto: %w", err)
	}
	defer archivo.Close()

	if _, err := archivo.Write(data); err != nil {
		return "", fmt.Errorf("error al subir archivo por SFTP: %w", err)
	}

	return s.cfg.FotosBaseURL + nombre, nil
}
