package gastro

// Wire shapes for the GastroBar backend. JSON tags carry the backend's
// Portuguese field names; identifiers stay English. Pointer fields are
// nullable on the wire.

// MenuItem is a catalog entry. ID is nil on create payloads and on malformed
// catalog rows; the draft workflow refuses to add an item without an ID.
type MenuItem struct {
	ID       *int    `json:"idItem,omitempty"`
	Name     string  `json:"nome"`
	Category string  `json:"tipo"`
	Price    float64 `json:"preco"`
}

// Table is a physical table in the house.
type Table struct {
	ID       *int   `json:"idMesa,omitempty"`
	Capacity int    `json:"capacidade"`
	Location string `json:"localizacao"`
}

// Reservation books a table for a party at a date/time.
type Reservation struct {
	ID          *int   `json:"idReserva,omitempty"`
	HolderName  string `json:"nomeResponsavel"`
	PartySize   int    `json:"numeroPessoas"`
	TableID     int    `json:"idMesa"`
	Date        string `json:"dataReserva"`
	Time        string `json:"horaReserva"`
	Note        string `json:"observacao,omitempty"`
}

// OrderLine is one item on an order, with the denormalized snapshot the
// backend stored when the line was added. Snapshot fields may be absent on
// older rows, hence the pointer price.
type OrderLine struct {
	ItemID    int      `json:"idItem"`
	Quantity  int      `json:"quantidade"`
	Name      string   `json:"nomeItem,omitempty"`
	Category  string   `json:"tipoItem,omitempty"`
	UnitPrice *float64 `json:"precoUnitario,omitempty"`
}

// Order is the persisted order shape. The same shape doubles as the
// submission payload: ID and PlacedAt are server-assigned and omitted on
// create, WaiterID/ManagerID are null when unassigned.
type Order struct {
	ID        *int        `json:"idPedido,omitempty"`
	WaiterID  *int        `json:"idGarcom"`
	ManagerID *int        `json:"idGerente"`
	TableID   int         `json:"idMesa"`
	PlacedAt  string      `json:"dataHora,omitempty"`
	Delivered bool        `json:"entregue"`
	Paid      bool        `json:"pago"`
	Discount  float64     `json:"desconto"`
	Lines     []OrderLine `json:"itensDoPedido"`
}

// Payment settles an order.
type Payment struct {
	ID      *int    `json:"idPagamento,omitempty"`
	OrderID int     `json:"idPedido"`
	Total   float64 `json:"valorTotal"`
	Method  string  `json:"metodoPagamento"`
	PaidAt  string  `json:"dataPagamento,omitempty"`
}

// Feedback is customer feedback tied to an order and table. Scores are 0-10
// and nullable.
type Feedback struct {
	ID           *int     `json:"idFeedback,omitempty"`
	OrderID      int      `json:"idPedido"`
	TableID      int      `json:"idMesa"`
	CustomerName string   `json:"nomeClienteFeedback,omitempty"`
	FoodScore    *float64 `json:"notaComida,omitempty"`
	ServiceScore *float64 `json:"notaAtendimento,omitempty"`
	Comment      string   `json:"comentarioTexto,omitempty"`
	SubmittedAt  string   `json:"dataFeedback,omitempty"`
}
