package booking

import "testing"

func TestDepositFor(t *testing.T) {
	cases := []struct {
		totalCost float64
		want      float64
	}{
		{250.00, 25.00},
		{100.00, 10.00},
		{99.99, 10.00},
		{33.33, 3.33},
		{0.04, 0.00},
		{0.05, 0.01},
	}
	for _, c := range cases {
		if got := DepositFor(c.totalCost); got != c.want {
			t.Errorf("DepositFor(%v) = %v, want %v", c.totalCost, got, c.want)
		}
	}
}

func TestToCents(t *testing.T) {
	cases := []struct {
		amount float64
		want   int64
	}{
		{25.00, 2500},
		{1.99, 199},
		{0.1 + 0.2, 30}, // float noise must not truncate down to 29
		{19.999, 2000},
		{0, 0},
	}
	for _, c := range cases {
		if got := ToCents(c.amount); got != c.want {
			t.Errorf("ToCents(%v) = %v, want %v", c.amount, got, c.want)
		}
	}
}

// A $250 service charged at checkout: $25 deposit plus $1.99 fee is exactly
// 2699 cents, never 2698 from truncation.
func TestCheckoutAmountCents(t *testing.T) {
	deposit := DepositFor(250.00)
	fee := 1.99
	total := ToCents(deposit) + ToCents(fee)
	if total != 2699 {
		t.Fatalf("checkout total = %d cents, want 2699", total)
	}
}

func TestCancelRefunds(t *testing.T) {
	if got := CustomerCancelRefund(25.00); got != 12.50 {
		t.Errorf("CustomerCancelRefund(25.00) = %v, want 12.50", got)
	}
	if got := CustomerCancelRefund(0.05); got != 0.03 {
		t.Errorf("CustomerCancelRefund(0.05) = %v, want 0.03", got)
	}
	if got := BusinessCancelRefund(25.00); got != 25.00 {
		t.Errorf("BusinessCancelRefund(25.00) = %v, want 25.00", got)
	}
}
