package session

import (
	"errors"
)

// ErrLocked возвращается любой операцией над данными, пока хранилище
// заблокировано. Все операции единообразны: сначала разблокировка.
var ErrLocked = errors.New("vault is locked")
