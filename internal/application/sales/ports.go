package sales

import (
	"context"

	"github.com/tu-usuario/pos-funeraria/internal/domain/repository"
)

// SaleTxRunner ejecuta una función dentro de una transacción con los
// repositorios de ventas y clientes atados a ella. Si fn retorna error se hace
// rollback completo: nunca queda una venta sin partidas ni partidas huérfanas.
type SaleTxRunner interface {
	Run(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		customerRepo repository.CustomerRepository,
	) error) error
}
