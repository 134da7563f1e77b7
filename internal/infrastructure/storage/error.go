package storage

import (
	"errors"
)

// ErrOpenVault — единая непрозрачная ошибка открытия хранилища:
// неверная парольная фраза, поврежденный контейнер или невалидные
// данные после расшифровки. Причины на этом уровне уже не различаются.
var ErrOpenVault = errors.New("cannot open vault: wrong passphrase or corrupted data")
