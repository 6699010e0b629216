package dispatcher

import "errors"

var ErrNoOrders = errors.New("no orders")
