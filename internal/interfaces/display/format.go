package display

import (
	"fmt"
	"strings"

	"github.com/smedge/backend/internal/domain/shared/valueobject"
)

// FormatMoney renders a money value with Indian digit grouping, e.g.
// "Rs. 12,34,567.89". The last three integer digits form one group and
// every pair before them forms another.
func FormatMoney(m valueobject.Money) string {
	fixed := m.Decimal().StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	if negative {
		fixed = fixed[1:]
	}

	intPart, fracPart, _ := strings.Cut(fixed, ".")
	grouped := groupIndian(intPart)

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("%sRs. %s.%s", sign, grouped, fracPart)
}

func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}

	return strings.Join(append(groups, tail), ",")
}

// FlagLine renders one status flag with a check or cross marker
func FlagLine(name string, active bool) string {
	marker := "✗"
	if active {
		marker = "✓"
	}
	return fmt.Sprintf("[%s] %s", marker, name)
}
