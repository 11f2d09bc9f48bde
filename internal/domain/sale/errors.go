package sale

import "errors"

var (
	ErrSaleNotFound        = errors.New("sale not found")
	ErrNoItems             = errors.New("a sale needs at least one item")
	ErrInvalidSaleType     = errors.New("invalid sale type")
	ErrReturnViaCreateSale = errors.New("returns must be recorded through the returns endpoint")
)
