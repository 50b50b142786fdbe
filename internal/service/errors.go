package service

import "errors"

// 服务层统一错误，HTTP 层用 errors.Is 映射成响应码。
var (
	// 用户
	ErrUserNotFound  = errors.New("user not found")
	ErrUserFetchFail = errors.New("failed to fetch users")

	// 商品
	ErrProductNotFound   = errors.New("product not found")
	ErrProductFetchFail  = errors.New("failed to fetch products")
	ErrProductNameEmpty  = errors.New("product name is empty")
	ErrProductPriceNeg   = errors.New("product price is negative")
	ErrProductCreateFail = errors.New("failed to create product")
	ErrProductUpdateFail = errors.New("failed to update product")

	// 购物车
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrCartFetchFail    = errors.New("failed to fetch cart")
	ErrCartUpdateFail   = errors.New("failed to update cart")

	// 结算
	ErrEmptyCart       = errors.New("cart is empty")
	ErrShippingInvalid = errors.New("shipping information is invalid")
	ErrOrderNoConflict = errors.New("order number conflict")
	ErrCheckoutFail    = errors.New("failed to place order")

	// 订单
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderStatusInvalid = errors.New("invalid order status")
	ErrOrderFetchFail     = errors.New("failed to fetch orders")
	ErrOrderUpdateFail    = errors.New("failed to update order")
	ErrOrderDeleteFail    = errors.New("failed to delete order")
)
