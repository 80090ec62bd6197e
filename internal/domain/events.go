package domain

// OrderCreatedMessage is published after an order is persisted; the
// notification worker picks it up and builds the WhatsApp summary.
type OrderCreatedMessage struct {
	OrderID string `json:"order_id"`
}

type CatalogImportMessage struct {
	TaskID        string `json:"task_id"`
	SpreadsheetID string `json:"spreadsheet_id"`
}
