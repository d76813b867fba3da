package integrity

import "testing"

func TestLoanHash_Vectors(t *testing.T) {
	cases := []struct {
		cash, loan int32
		max        uint32
		want       uint32
	}{
		{0, 0, 0, 0x127400e0},
		{10000, 0, 20000, 0xc4540aa3},
		{10000, 5000, 20000, 0xe2540a9e},
		{-500, 1, 1, 0x361c00e0},
	}
	for _, c := range cases {
		if got := LoanHash(c.cash, c.loan, c.max); got != c.want {
			t.Fatalf("LoanHash(%d,%d,%d): got=%#x want=%#x", c.cash, c.loan, c.max, got, c.want)
		}
	}
}

func TestLoanHash_PureAndSensitive(t *testing.T) {
	base := LoanHash(10000, 5000, 20000)
	if again := LoanHash(10000, 5000, 20000); again != base {
		t.Fatalf("not pure: %#x vs %#x", again, base)
	}
	for name, got := range map[string]uint32{
		"cash":    LoanHash(10001, 5000, 20000),
		"loan":    LoanHash(10000, 5001, 20000),
		"maxLoan": LoanHash(10000, 5000, 20001),
	} {
		if got == base {
			t.Fatalf("changing %s did not change the hash", name)
		}
	}
}

func TestEncryptMoney(t *testing.T) {
	if got := uint32(EncryptMoney(0)); got != 0x92c43e9d {
		t.Fatalf("EncryptMoney(0): got=%#x", got)
	}
	if got := uint32(EncryptMoney(100000)); got != 0xa2103e9d {
		t.Fatalf("EncryptMoney(100000): got=%#x", got)
	}
	for _, v := range []int32{0, 1, -1, 100000, -2147483648, 2147483647} {
		if got := DecryptMoney(EncryptMoney(v)); got != v {
			t.Fatalf("round trip %d: got=%d", v, got)
		}
	}
}
