package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatPrice renders a whole-unit amount for display, e.g. 159990 INR as
// "₹1,59,990". INR uses Indian digit grouping; other currencies fall back to
// western grouping with the code as prefix.
func FormatPrice(amount int64, currency string) string {
	d := decimal.NewFromInt(amount)
	neg := d.IsNegative()
	digits := d.Abs().String()

	var grouped string
	if currency == "INR" {
		grouped = groupIndian(digits)
	} else {
		grouped = groupWestern(digits)
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	if currency == "INR" {
		b.WriteString("₹")
	} else {
		b.WriteString(currency)
		b.WriteByte(' ')
	}
	b.WriteString(grouped)
	return b.String()
}

// groupIndian inserts separators in the 12,34,567 pattern: the last three
// digits form one group, everything before that groups in pairs.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]
	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	parts = append([]string{head}, parts...)
	return strings.Join(parts, ",") + "," + tail
}

func groupWestern(digits string) string {
	var parts []string
	for len(digits) > 3 {
		parts = append([]string{digits[len(digits)-3:]}, parts...)
		digits = digits[:len(digits)-3]
	}
	parts = append([]string{digits}, parts...)
	return strings.Join(parts, ",")
}
