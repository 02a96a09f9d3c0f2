package enum

// Wire values below are the backend's own labels. The GastroBar API predates
// this gateway and speaks Portuguese on the wire; Go identifiers stay English.

// Menu item categories (tipo on /itens).
const (
	CategoryBeverage = "Bebida"
	CategoryMainDish = "Prato Principal"
	CategoryStarter  = "Entrada"
	CategoryDessert  = "Sobremesa"
	CategorySnack    = "Petisco"
	CategoryOther    = "Outro"
)

// Categories lists every valid menu item category, in menu display order.
var Categories = []string{
	CategoryBeverage,
	CategoryMainDish,
	CategoryStarter,
	CategoryDessert,
	CategorySnack,
	CategoryOther,
}

// Staff role tags (tipo discriminator on /funcionarios).
const (
	RoleWaiter    = "Garcom"
	RoleCook      = "Cozinheiro"
	RoleBartender = "Bartender"
	RoleManager   = "Gerente"
)

// Order status labels used by the dashboard status-count endpoint.
const (
	OrderStatusPending          = "PENDENTE"
	OrderStatusDeliveredNotPaid = "ENTREGUE_NAO_PAGO"
	OrderStatusPaid             = "PAGO"
)

// IsValidCategory reports whether c is one of the known menu categories.
func IsValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}
