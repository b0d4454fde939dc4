package proxy

import "errors"

var ErrInvalidTarget = errors.New("proxy target must be an absolute http(s) URL")
