// Package currency defines coin denominations, the character wallet, and the
// dual-pool rebalancing algorithm used for all wallet transactions.
package currency

import (
	"errors"
	"fmt"
	"strings"
)

// Unit identifies a coin denomination.
type Unit string

const (
	// Copper is the base denomination; all exchange rates are expressed in it.
	Copper Unit = "cp"
	// Silver is worth 10 copper.
	Silver Unit = "sp"
	// Electrum is worth 50 copper. Accepted in payment, never minted back.
	Electrum Unit = "ep"
	// Gold is worth 100 copper.
	Gold Unit = "gp"
	// Platinum is worth 1000 copper and is tracked in its own pool.
	Platinum Unit = "pp"
)

// rates maps each denomination to its value in copper.
var rates = map[Unit]int{
	Copper:   1,
	Silver:   10,
	Electrum: 50,
	Gold:     100,
	Platinum: 1000,
}

// ErrInsufficientFunds is returned when a wallet operation cannot balance
// without going negative. The wallet is left unchanged.
var ErrInsufficientFunds = errors.New("currency: insufficient funds")

// ErrUnknownUnit is returned for a denomination outside the five known units.
var ErrUnknownUnit = errors.New("currency: unknown denomination")

// Rate returns the copper value of one coin of the given denomination and
// whether the denomination is known.
func Rate(u Unit) (int, bool) {
	r, ok := rates[u]
	return r, ok
}

// Units returns the five denominations in ascending value order.
func Units() []Unit {
	return []Unit{Copper, Silver, Electrum, Gold, Platinum}
}

// Wallet holds a character's coins. All counts are non-negative.
type Wallet struct {
	CP int `json:"cp"`
	SP int `json:"sp"`
	EP int `json:"ep"`
	GP int `json:"gp"`
	PP int `json:"pp"`
}

// TotalBaseValue returns the wallet's total worth in copper.
//
// Postcondition: result >= 0 for any valid wallet.
func (w Wallet) TotalBaseValue() int {
	return w.CP*rates[Copper] +
		w.SP*rates[Silver] +
		w.EP*rates[Electrum] +
		w.GP*rates[Gold] +
		w.PP*rates[Platinum]
}

// ApplyDelta applies a signed amount of the given denomination to the wallet
// and returns the rebalanced result. Platinum lives in its own pool: only a
// platinum-denominated delta touches it directly, and the lower denominations
// never round up into platinum on their own. A negative amount models
// spending.
//
// Precondition: w is a valid wallet (all counts >= 0).
// Postcondition: on success, the returned wallet has the same total base
// value as w plus amount*rate(unit), with EP always zero; on failure the
// zero Wallet and a non-nil error are returned and w is untouched.
func ApplyDelta(w Wallet, unit Unit, amount int) (Wallet, error) {
	rate, ok := rates[unit]
	if !ok {
		return Wallet{}, fmt.Errorf("%w: %q", ErrUnknownUnit, unit)
	}

	// Two pools: platinum alone on top, everything else measured in copper.
	highPP := w.PP
	lowCP := w.CP*rates[Copper] + w.SP*rates[Silver] + w.EP*rates[Electrum] + w.GP*rates[Gold]

	if unit == Platinum {
		highPP += amount
	} else {
		lowCP += amount * rate
	}

	// Break platinum coins to cover a low-pool deficit.
	for lowCP < 0 && highPP > 0 {
		highPP--
		lowCP += rates[Platinum]
	}

	// Mint platinum from the low pool to cover a high-pool deficit.
	for highPP < 0 && lowCP >= rates[Platinum] {
		lowCP -= rates[Platinum]
		highPP++
	}

	if lowCP < 0 || highPP < 0 {
		return Wallet{}, ErrInsufficientFunds
	}

	return mint(lowCP, highPP), nil
}

// mint re-coins a copper total greedily into gold, silver, and copper.
// Electrum is never minted; it is accepted on the way in and melted down.
func mint(lowCP, pp int) Wallet {
	var out Wallet
	out.PP = pp
	out.GP = lowCP / rates[Gold]
	lowCP %= rates[Gold]
	out.EP = 0
	out.SP = lowCP / rates[Silver]
	lowCP %= rates[Silver]
	out.CP = lowCP
	return out
}

// FormatCost returns a display string for a price, e.g. "1,500 gp".
//
// Postcondition: the numeric part carries thousands separators.
func FormatCost(value int, unit Unit) string {
	return fmt.Sprintf("%s %s", groupDigits(value), unit)
}

// groupDigits inserts comma separators into a non-negative integer.
func groupDigits(n int) string {
	if n < 0 {
		return "-" + groupDigits(-n)
	}
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return strings.Join(parts, ",")
}
