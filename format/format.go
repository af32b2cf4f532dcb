package format

import (
	"fmt"
	"strings"
)

// currencySymbols maps ISO 4217 codes to display symbols.
var currencySymbols = map[string]string{
	"BRL": "R$",
	"USD": "$",
	"EUR": "€",
}

// Price renders an amount in the listing's currency. Brazilian convention
// is used for BRL and EUR (dot thousands, comma decimals), US convention
// for everything else.
func Price(amount float64, currency string) string {
	symbol, ok := currencySymbols[currency]
	if !ok {
		symbol = currency
	}

	negative := amount < 0
	if negative {
		amount = -amount
	}

	whole := int64(amount)
	cents := int64(amount*100+0.5) - whole*100
	if cents >= 100 {
		whole++
		cents -= 100
	}

	grouped := groupThousands(whole, thousandsSep(currency))
	out := fmt.Sprintf("%s %s%c%02d", symbol, grouped, decimalSep(currency), cents)
	if negative {
		return "-" + out
	}
	return out
}

func thousandsSep(currency string) byte {
	if currency == "USD" {
		return ','
	}
	return '.'
}

func decimalSep(currency string) byte {
	if currency == "USD" {
		return '.'
	}
	return ','
}

func groupThousands(n int64, sep byte) string {
	digits := fmt.Sprintf("%d", n)
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// Phone renders an E.164 number for display. Brazilian numbers get the
// local convention; anything else is returned as stored.
func Phone(e164 string) string {
	if strings.HasPrefix(e164, "+55") && len(e164) == 14 {
		// +55 (11) 91234-5678
		area := e164[3:5]
		local := e164[5:]
		return fmt.Sprintf("+55 (%s) %s-%s", area, local[:5], local[5:])
	}
	if strings.HasPrefix(e164, "+55") && len(e164) == 13 {
		area := e164[3:5]
		local := e164[5:]
		return fmt.Sprintf("+55 (%s) %s-%s", area, local[:4], local[4:])
	}
	return e164
}
