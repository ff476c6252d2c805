package formatters

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// printer formats numbers with en-US digit grouping
var printer = message.NewPrinter(language.AmericanEnglish)

// FormatPrice formats a USD price. Prices of 1000 and above have no fraction digits,
// prices from 1 have exactly two, smaller prices keep up to eight significant fraction digits.
func FormatPrice(price float64) string {
	sign := ""
	if price < 0 {
		sign = "-"
		price = math.Abs(price)
	}

	var formatted string
	switch {
	case price >= 1000:
		formatted = printer.Sprint(number.Decimal(price, number.MaxFractionDigits(0)))
	case price >= 1:
		formatted = printer.Sprint(number.Decimal(price, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
	default:
		formatted = printer.Sprint(number.Decimal(price, number.MinFractionDigits(2), number.MaxFractionDigits(8)))
	}

	return sign + "$" + formatted
}

// FormatVolume abbreviates a USD amount with B, M or K suffixes
func FormatVolume(volume float64) string {
	switch {
	case volume >= 1e9:
		return fmt.Sprintf("$%.2fB", volume/1e9)
	case volume >= 1e6:
		return fmt.Sprintf("$%.2fM", volume/1e6)
	case volume >= 1e3:
		return fmt.Sprintf("$%.2fK", volume/1e3)
	default:
		return fmt.Sprintf("$%.2f", volume)
	}
}

// FormatPercentage formats a signed percentage with two decimals; zero and positive values get a plus sign
func FormatPercentage(percentage float64) string {
	sign := ""
	if percentage >= 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%.2f%%", sign, percentage)
}
