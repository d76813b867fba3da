// Package integrity holds the small mixing functions the legacy format uses to
// detect direct edits of sensitive money fields. None of them are
// cryptographically secure.
package integrity

import "math/bits"

const (
	loanHashSeed = 0x70093A
	moneyKey     = 0xF4EC9621
)

// LoanHash mixes the starting cash, current loan and loan ceiling into the
// value stored next to them in the snapshot.
func LoanHash(initialCash, loan int32, maxLoan uint32) uint32 {
	v := uint32(loanHashSeed)
	v -= uint32(initialCash)
	v = bits.RotateLeft32(v, -5)
	v -= uint32(loan)
	v = bits.RotateLeft32(v, -7)
	v += maxLoan
	v = bits.RotateLeft32(v, -3)
	return v
}

// EncryptMoney scrambles the stored cash balance.
func EncryptMoney(v int32) int32 {
	return int32(bits.RotateLeft32(uint32(v)^moneyKey, 13))
}

// DecryptMoney is the inverse of EncryptMoney.
func DecryptMoney(v int32) int32 {
	return int32(bits.RotateLeft32(uint32(v), -13) ^ moneyKey)
}
