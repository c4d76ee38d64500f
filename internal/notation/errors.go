package notation

import "errors"

var ErrInvalidFEN = errors.New("invalid fen")
