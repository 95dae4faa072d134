package aster

import (
	"context"
	"fmt"
	"strconv"

	"github.com/adshao/go-binance/v2/futures"
	"github.com/kynora/aster-agent/internal/service/exchange"
	"github.com/kynora/aster-agent/internal/service/exchange/precision"
	"github.com/shopspring/decimal"
)

// OrderService Aster 市价下单
type OrderService struct {
	cli *futures.Client
}

func NewOrderService(cli *futures.Client) *OrderService {
	return &OrderService{
		cli: cli,
	}
}

// Submit 的签名即 precision.SubmitFunc
var _ precision.SubmitFunc = (*OrderService)(nil).Submit

// Submit 提交一笔市价单
// 数量由调用方（重试引擎）规整，这里只负责格式化和发送
func (svc *OrderService) Submit(ctx context.Context, symbol string, side exchange.Side,
	quantity float64, reduceOnly bool) (exchange.OrderResult, error) {
	resp, err := svc.cli.NewCreateOrderService().
		Symbol(symbol).
		Side(asterSide(side)).
		Type(futures.OrderTypeMarket).
		Quantity(formatQuantity(quantity)).
		ReduceOnly(reduceOnly).
		Do(ctx)
	if err != nil {
		return exchange.OrderResult{}, err
	}
	return svc.parseCreateResponse(resp, side, quantity, reduceOnly), nil
}

func (svc *OrderService) parseCreateResponse(resp *futures.CreateOrderResponse,
	side exchange.Side, quantity float64, reduceOnly bool) exchange.OrderResult {
	qty, err := decimal.NewFromString(resp.OrigQuantity)
	if err != nil {
		qty = decimal.NewFromFloat(quantity)
	}
	price, _ := decimal.NewFromString(resp.AvgPrice)
	return exchange.OrderResult{
		Id:         strconv.FormatInt(resp.OrderID, 10),
		Symbol:     resp.Symbol,
		Side:       side,
		Quantity:   qty,
		Price:      price,
		Status:     fromAsterOrderStatus(resp.Status),
		ReduceOnly: reduceOnly,
	}
}

// CancelOrder 撤销未成交订单
func (svc *OrderService) CancelOrder(ctx context.Context, symbol, orderId string) error {
	id, err := strconv.ParseInt(orderId, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid order id %s: %w", orderId, err)
	}
	_, err = svc.cli.NewCancelOrderService().
		Symbol(symbol).
		OrderID(id).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("cancel order %s failed: %w", orderId, err)
	}
	return nil
}

func formatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}
