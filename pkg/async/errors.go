package async

import "errors"

var ErrNotStarted = errors.New("async: computation not started, context done")
