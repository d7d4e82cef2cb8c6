package promotion

import "errors"

var ErrInvalidWidth = errors.New("invalid tire width")
