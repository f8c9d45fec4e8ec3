package ticket

import "errors"

var (
	ErrTicketNotFound  = errors.New("ticket not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrNotYourTicket   = errors.New("ticket does not belong to you")
)
