package console

import (
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/rustock/internal/domain"
)

func (c *Console) fprintf(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, format, args...)
}

func parseInt(s, field string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, domain.NewValidationError(field, field+": número entero inválido")
	}
	return n, nil
}

func parseDecimal(s, field string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, domain.NewValidationError(field, field+": importe inválido")
	}
	return d, nil
}

func itoa(n int) string { return strconv.Itoa(n) }

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
