package expense

// Expense is a single outgoing payment. Amounts are stotinki of the base
// currency; IncurredAt is a YYYY-MM-DD date label, not a timestamp.
type Expense struct {
	ID          int
	Amount      int64
	IncurredAt  string
	Description string
	Recipient   string
	// CategoryID is a weak reference. Zero means uncategorized; a dangling id
	// is treated the same way by reporting.
	CategoryID  int
	ReceiptPath string
}

// ReceiptUpload is an image file attached to an expense before the row is
// written.
type ReceiptUpload struct {
	Filename    string
	ContentType string
	Content     []byte
}

// MaxReceiptSize bounds uploaded receipt images.
const MaxReceiptSize = 10 * 1024 * 1024
