package bot

import (
	"fmt"
	"strings"
)

// FormatBalance formats a balance amount with thousand separators
func FormatBalance(balance int64) string {
	str := fmt.Sprintf("%d", balance)

	negative := strings.HasPrefix(str, "-")
	if negative {
		str = str[1:]
	}

	n := len(str)
	if n <= 3 {
		if negative {
			return "-" + str
		}
		return str
	}

	var result strings.Builder
	if negative {
		result.WriteRune('-')
	}
	for i, digit := range str {
		if i > 0 && (n-i)%3 == 0 {
			result.WriteRune(',')
		}
		result.WriteRune(digit)
	}

	return result.String()
}
