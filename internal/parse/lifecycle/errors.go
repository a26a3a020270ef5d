package lifecycle

import "errors"

var ErrSessionNotFound = errors.New("parse session not found")
