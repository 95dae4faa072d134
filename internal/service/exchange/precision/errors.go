package precision

import (
	"errors"
	"fmt"
	"strings"

	"github.com/adshao/go-binance/v2/common"
)

// 交易所 "数量精度超限" 错误码
// 与币安 futures 接口兼容: -1111 "Precision is over the maximum defined for this asset."
const precisionExceededCode = -1111

// IsPrecisionExceeded 判断是否为数量精度超限错误
// 这是唯一会触发降级重试的错误，其他错误一律原样上抛
func IsPrecisionExceeded(err error) bool {
	var apiErr *common.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	if apiErr.Code == precisionExceededCode {
		return true
	}
	return strings.Contains(strings.ToLower(apiErr.Message), "precision")
}

// LadderExhaustedError 从起始精度一路降到 0 仍然全部被拒
type LadderExhaustedError struct {
	Symbol   string
	Attempts int
	LastErr  error
}

func (e *LadderExhaustedError) Error() string {
	return fmt.Sprintf("all precisions failed for %s after %d attempts: %v",
		e.Symbol, e.Attempts, e.LastErr)
}

func (e *LadderExhaustedError) Unwrap() error {
	return e.LastErr
}
