package session

import "errors"

// ErrBusy rejects generate and start requests while a sort is running.
var ErrBusy = errors.New("session: sort in progress")
