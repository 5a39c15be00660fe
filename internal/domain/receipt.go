package domain

import "time"

// ReceiptTimeLayout renders timestamps the way a browser's en-US toLocaleString does.
const ReceiptTimeLayout = "1/2/2006, 3:04:05 PM"

type Receipt struct {
	OrderID   string
	Total     Money
	Timestamp string

	CreatedAt time.Time
}
