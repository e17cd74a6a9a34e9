package utils

import "strings"

// QuoteJoin renders a list the way user-facing enumerations are written:
// «first», «second», «third».
func QuoteJoin(items []string) string {
	return "«" + strings.Join(items, "», «") + "»"
}
