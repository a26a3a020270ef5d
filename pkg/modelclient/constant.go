package modelclient

import "time"

const (
	// DefaultTimeout bounds inline parse calls; typing must never wait longer.
	DefaultTimeout = 5 * time.Second

	// ChatTimeout bounds conversational calls, which stream and may run long.
	ChatTimeout = 30 * time.Second

	parsePath = "/parse"
	chatPath  = "/chat"
)
