package chat

import "errors"

var ErrNoMessages = errors.New("conversation has no messages")
