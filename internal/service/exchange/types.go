package exchange

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// https://github.com/asterdex/api-docs

// Symbol 交易对
type Symbol struct {
	Base  string
	Quote string
}

func (s Symbol) ToString() string {
	return fmt.Sprintf("%s%s", s.Base, s.Quote)
}

func (s Symbol) ToSlashString() string {
	return fmt.Sprintf("%s/%s", s.Base, s.Quote)
}

type Side string

const (
	Buy  Side = "BUY"
	Sell Side = "SELL"
)

// Opposite 反方向
func (s Side) Opposite() Side {
	switch s {
	case Buy:
		return Sell
	case Sell:
		return Buy
	default:
		return s
	}
}

type OrderStatus string

const (
	OrderStatusCreated       OrderStatus = "created"
	OrderStatusPartialFilled OrderStatus = "partial_filled"
	OrderStatusFilled        OrderStatus = "filled"
	OrderStatusCancelled     OrderStatus = "cancelled"
	OrderStatusRejected      OrderStatus = "rejected"
)

// IsFilled 判断订单是否已完全成交
func (s OrderStatus) IsFilled() bool {
	return s == OrderStatusFilled
}

// OrderResult 下单成功后的回执
type OrderResult struct {
	Id         string
	Symbol     string
	Side       Side
	Quantity   decimal.Decimal // 实际提交的数量
	Price      decimal.Decimal
	Status     OrderStatus
	ReduceOnly bool
}
