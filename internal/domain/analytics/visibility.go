package analytics

import (
	"strings"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

// Visibility predicados inyectables que deciden qué clientes y vendedores ve el usuario.
// Un predicado nil deja pasar todo.
type Visibility struct {
	Customer    func(entity.Customer) bool
	SalesPerson func(entity.SalesPerson) bool
}

// AllowAll no restringe nada.
func AllowAll() Visibility {
	return Visibility{}
}

// HiddenSalesPersonPolicy oculta a usuarios no admin los clientes del vendedor cuyo nombre
// coincide exactamente (sin distinguir mayúsculas) con hidden, y al propio vendedor.
// Con hidden vacío o usuario admin no filtra.
func HiddenSalesPersonPolicy(hidden string, isAdmin bool) Visibility {
	if isAdmin || hidden == "" {
		return AllowAll()
	}
	return Visibility{
		Customer: func(c entity.Customer) bool {
			return !strings.EqualFold(c.SalesPersonName, hidden)
		},
		SalesPerson: func(sp entity.SalesPerson) bool {
			return !strings.EqualFold(sp.Name, hidden)
		},
	}
}

// Apply devuelve copias filtradas; nunca modifica la entrada.
func (v Visibility) Apply(customers []entity.Customer, people []entity.SalesPerson) ([]entity.Customer, []entity.SalesPerson) {
	outC := make([]entity.Customer, 0, len(customers))
	for _, c := range customers {
		if v.Customer == nil || v.Customer(c) {
			outC = append(outC, c)
		}
	}
	outP := make([]entity.SalesPerson, 0, len(people))
	for _, sp := range people {
		if v.SalesPerson == nil || v.SalesPerson(sp) {
			outP = append(outP, sp)
		}
	}
	return outC, outP
}
