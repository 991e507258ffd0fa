package customers

import (
	"fmt"
	"strings"

	"github.com/tu-usuario/pos-funeraria/internal/domain"
)

// NormalizePhone lleva un teléfono a su forma canónica: solo dígitos, exactamente 10.
// Acepta entradas formateadas ("55 1234-5678"); cualquier otro largo es inválido.
func NormalizePhone(telefono string) (string, error) {
	var b strings.Builder
	for _, r := range telefono {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) != 10 {
		return "", fmt.Errorf("%w: el teléfono debe tener 10 dígitos", domain.ErrInvalidInput)
	}
	return digits, nil
}
