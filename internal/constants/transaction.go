package constants

// Notice messages shown after backend round trips.
const (
	MsgAdded   = "Transaction added successfully!"
	MsgUpdated = "Transaction updated successfully!"
	MsgDeleted = "Transaction deleted successfully!"

	MsgAddFailed    = "Failed to add transaction"
	MsgUpdateFailed = "Failed to update transaction"
	MsgDeleteFailed = "Failed to delete transaction"
	MsgLoadFailed   = "Failed to load transactions"
	MsgStatsFailed  = "Failed to load dashboard"

	MsgLocked    = "This transaction can no longer be edited (12-hour window has passed)"
	MsgCancelled = "Operation Cancelled"
)

const (
	// Date Layouts
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04"
	DisplayDate    = "02 Jan 2006"

	CurrencySymbol = "₹"
)
