package foto

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"regexp"
	"time"

	"github.com/Malbrius/checadorccm/internal/apperror"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	_ "image/jpeg"
	_ "image/png"
)

const (
	TamanoMaximo = 5 * 1024 * 1024 // 5MB

	AnchoMaximo = 800
	AltoMaximo  = 600
	CalidadJPEG = 85
)

// La cámara del kiosco manda la foto como data URL (data:image/jpeg;base64,...)
var rePrefijoDataURL = regexp.MustCompile(`^data:image/[a-zA-Z]+;base64,`)

func DecodificarBase64(fotoBase64 string) ([]byte, error) {
	limpio := rePrefijoDataURL.ReplaceAllString(fotoBase64, "")
	data, err := base64.StdEncoding.DecodeString(limpio)
	if err != nil {
		return nil, apperror.New(apperror.CodeValidacion, "Formato de imagen inválido")
	}
	return data, nil
}

type InfoImagen struct {
	Ancho  int    `json:"width"`
	Alto   int    `json:"height"`
	Mime   string `json:"mime"`
	Tamano int    `json:"size"`
}

// Validar revisa que los bytes sean una imagen JPG o PNG de máximo 5MB.
func Validar(data []byte) (*InfoImagen, error) {
	if len(data) > TamanoMaximo {
		return nil, apperror.New(apperror.CodeValidacion, "La imagen es demasiado grande (máximo 5MB)")
	}

	cfg, formato, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, apperror.New(apperror.CodeValidacion, "El archivo no es una imagen válida")
	}

	if formato != "jpeg" && formato != "png" {
		return nil, apperror.New(apperror.CodeValidacion, "Tipo de imagen no permitido. Solo JPG y PNG")
	}

	return &InfoImagen{
		Ancho:  cfg.Width,
		Alto:   cfg.Height,
		Mime:   "image/" + formato,
		Tamano: len(data),
	}, nil
}

// Redimensionar reduce la imagen a máximo 800x600 conservando la proporción
// y la reencodea como JPEG calidad 85. Si la imagen ya cabe, o algo falla al
// decodificarla, se regresan los bytes originales tal cual.
func Redimensionar(data []byte) []byte {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return data
	}

	limites := img.Bounds()
	if limites.Dx() <= AnchoMaximo && limites.Dy() <= AltoMaximo {
		return data
	}

	ajustada := imaging.Fit(img, AnchoMaximo, AltoMaximo, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, ajustada, imaging.JPEG, imaging.JPEGQuality(CalidadJPEG)); err != nil {
		return data
	}
	return buf.Bytes()
}

// NombreArchivo genera un nombre único para la foto. El sufijo uuid evita
// colisiones cuando dos registros caen en el mismo segundo.
func NombreArchivo(numero string, ahora time.Time) string {
	return fmt.Sprintf("checador_%s_%s_%s.jpg", numero, ahora.Format("20060102150405"), uuid.NewString()[:8])
}
