package models

import "fmt"

// StatusPending is the status every new issue starts in. There is no
// transition logic server-side; operators change it directly in the store.
const StatusPending = "Pending"

// Ticket ids are derived from the row id, never stored. The 10000 offset
// keeps every ticket at five digits or more.
const ticketIDOffset = 10000

func TicketID(id int64) string {
	return fmt.Sprintf("TC-%d", ticketIDOffset+id)
}
