// Package currency formats ledger amounts for display.
package currency

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/Veraticus/pocketledger/internal/model"
)

// style describes how one currency is written.
type style struct {
	locale language.Tag
	symbol string
	suffix bool // symbol after the number, separated by a space
}

// separators is the digit layout of a locale. Grouping sizes count from
// the decimal point; secondary repeats after the first group.
type separators struct {
	group     string
	decimal   string
	primary   int
	secondary int
}

var styles = map[string]style{
	"USD": {locale: language.MustParse("en-US"), symbol: "$"},
	"EUR": {locale: language.MustParse("de-DE"), symbol: "€", suffix: true},
	"GBP": {locale: language.MustParse("en-GB"), symbol: "£"},
	"JPY": {locale: language.MustParse("ja-JP"), symbol: "¥"},
	"INR": {locale: language.MustParse("en-IN"), symbol: "₹"},
	"LKR": {locale: language.MustParse("en-LK"), symbol: "Rs"},
}

var layouts = make(map[string]separators, len(styles))

func init() {
	for code, s := range styles {
		layouts[code] = localeSeparators(s.locale)
	}
}

// localeSeparators reads the separators and group sizes from a sample
// number rendered by the locale's printer.
func localeSeparators(tag language.Tag) separators {
	sample := message.NewPrinter(tag).Sprintf("%v", number.Decimal(1234567.8, number.Scale(1)))

	var (
		seps []string
		runs []int
		sep  strings.Builder
		run  int
	)
	for _, r := range sample {
		if r >= '0' && r <= '9' {
			if sep.Len() > 0 {
				seps = append(seps, sep.String())
				runs = append(runs, run)
				sep.Reset()
				run = 0
			}
			run++
			continue
		}
		sep.WriteRune(r)
	}
	runs = append(runs, run)

	out := separators{decimal: "."}
	n := len(seps)
	if n == 0 {
		return out
	}
	out.decimal = seps[n-1]
	if n >= 2 {
		out.group = seps[n-2]
		out.primary = runs[n-1]
		out.secondary = out.primary
	}
	if n >= 3 {
		out.secondary = runs[n-2]
	}
	return out
}

// groupDigits inserts the group separator into a run of integer digits.
func (l separators) groupDigits(digits string) string {
	if l.primary <= 0 || len(digits) <= l.primary {
		return digits
	}

	head, tail := digits[:len(digits)-l.primary], digits[len(digits)-l.primary:]
	var chunks []string
	for len(head) > l.secondary {
		chunks = append(chunks, head[len(head)-l.secondary:])
		head = head[:len(head)-l.secondary]
	}

	var b strings.Builder
	b.WriteString(head)
	for i := len(chunks) - 1; i >= 0; i-- {
		b.WriteString(l.group)
		b.WriteString(chunks[i])
	}
	b.WriteString(l.group)
	b.WriteString(tail)
	return b.String()
}

// Available returns the selectable currency codes.
func Available() []string {
	out := make([]string, len(model.SupportedCurrencies))
	copy(out, model.SupportedCurrencies)
	return out
}

// Symbol returns the display symbol for code. Unknown codes are returned as-is.
func Symbol(code string) string {
	if s, ok := styles[code]; ok {
		return s.symbol
	}
	return code
}

// Format renders amount in the locale associated with code. Digits come
// from the decimal itself, so large amounts stay exact.
// Unknown codes fall back to USD.
func Format(amount decimal.Decimal, code string) string {
	s, ok := styles[code]
	if !ok {
		code = model.DefaultCurrency
		s = styles[code]
	}

	scale := Scale(code)
	rounded := amount.Abs().Round(int32(scale))

	layout := layouts[code]
	whole, fraction, _ := strings.Cut(rounded.StringFixed(int32(scale)), ".")
	digits := layout.groupDigits(whole)
	if scale > 0 {
		digits += layout.decimal + fraction
	}

	var b strings.Builder
	if amount.Round(int32(scale)).IsNegative() {
		b.WriteString("-")
	}
	if s.suffix {
		b.WriteString(digits)
		b.WriteString(" ")
		b.WriteString(s.symbol)
	} else {
		b.WriteString(s.symbol)
		b.WriteString(digits)
	}
	return b.String()
}

// Scale returns the number of minor-unit digits for code (2 for most,
// 0 for JPY). Invalid codes use 2.
func Scale(code string) int {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return 2
	}
	scale, _ := currency.Standard.Rounding(unit)
	return scale
}
