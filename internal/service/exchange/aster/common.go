package aster

import (
	"github.com/adshao/go-binance/v2/futures"
	"github.com/kynora/aster-agent/internal/service/exchange"
)

func asterSide(side exchange.Side) futures.SideType {
	switch side {
	case exchange.Buy:
		return futures.SideTypeBuy
	case exchange.Sell:
		return futures.SideTypeSell
	default:
		return ""
	}
}

func fromAsterSide(side futures.SideType) exchange.Side {
	switch side {
	case futures.SideTypeBuy:
		return exchange.Buy
	case futures.SideTypeSell:
		return exchange.Sell
	default:
		return exchange.Side(side)
	}
}

func fromAsterOrderStatus(status futures.OrderStatusType) exchange.OrderStatus {
	switch status {
	case futures.OrderStatusTypeNew:
		return exchange.OrderStatusCreated
	case futures.OrderStatusTypePartiallyFilled:
		return exchange.OrderStatusPartialFilled
	case futures.OrderStatusTypeFilled:
		return exchange.OrderStatusFilled
	case futures.OrderStatusTypeCanceled, futures.OrderStatusTypeExpired:
		return exchange.OrderStatusCancelled
	case futures.OrderStatusTypeRejected:
		return exchange.OrderStatusRejected
	default:
		return exchange.OrderStatus(status)
	}
}

func fromAsterPositionSide(side string) exchange.PositionSide {
	switch side {
	case "LONG":
		return exchange.PositionSideLong
	case "SHORT":
		return exchange.PositionSideShort
	default:
		return exchange.PositionSide(side)
	}
}
