package cart

import (
	"testing"

	"github.com/shopspring/decimal"
)

func line(productID, sku string, price string, qty int) LineItem {
	return LineItem{
		ProductID: productID,
		SKUCode:   sku,
		Name:      sku,
		UnitPrice: decimal.RequireFromString(price),
		Quantity:  qty,
	}
}

func TestAddMergesExistingProduct(t *testing.T) {
	c := add(Cart{}, line("p1", "A1", "10.00", 2))
	c = add(c, line("p1", "A1", "10.00", 3))

	if len(c.Lines) != 1 {
		t.Fatalf("expected a single merged line, got %d", len(c.Lines))
	}
	if c.Lines[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", c.Lines[0].Quantity)
	}
}

func TestAddDefaultsQuantityToOne(t *testing.T) {
	c := add(Cart{}, line("p1", "A1", "10.00", 0))
	if c.Lines[0].Quantity != 1 {
		t.Fatalf("expected quantity 1, got %d", c.Lines[0].Quantity)
	}
}

func TestAddPreservesCapturedPrice(t *testing.T) {
	c := add(Cart{}, line("p1", "A1", "10.00", 1))
	relisted := line("p1", "A1", "12.00", 1)
	c = add(c, relisted)

	if !c.Lines[0].UnitPrice.Equal(decimal.RequireFromString("10.00")) {
		t.Fatalf("price captured at first add must stick, got %s", c.Lines[0].UnitPrice)
	}
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	c := add(Cart{}, line("p1", "A1", "10.00", 2))
	c = add(c, line("p2", "B2", "5.50", 1))

	c = updateQuantity(c, "p1", 0)

	if len(c.Lines) != 1 || c.Lines[0].ProductID != "p2" {
		t.Fatalf("expected only p2 to remain, got %+v", c.Lines)
	}
	if !c.Total().Equal(decimal.RequireFromString("5.50")) {
		t.Fatalf("expected total 5.50, got %s", c.Total())
	}
}

func TestUpdateQuantityUnknownProductIsNoop(t *testing.T) {
	c := add(Cart{}, line("p1", "A1", "10.00", 2))
	c2 := updateQuantity(c, "ghost", 7)
	if len(c2.Lines) != 1 || c2.Lines[0].Quantity != 2 {
		t.Fatalf("unexpected change %+v", c2.Lines)
	}
}

func TestRemoveIsNoopWhenAbsent(t *testing.T) {
	c := add(Cart{}, line("p1", "A1", "10.00", 2))
	c = remove(c, "ghost")
	if len(c.Lines) != 1 {
		t.Fatalf("expected untouched cart, got %+v", c.Lines)
	}
}

func TestTotalScenario(t *testing.T) {
	c := add(Cart{}, line("p1", "A1", "10.00", 2))
	c = add(c, line("p2", "B2", "5.50", 1))

	if !c.Total().Equal(decimal.RequireFromString("25.50")) {
		t.Fatalf("expected 25.50, got %s", c.Total())
	}

	c = updateQuantity(c, "p1", 0)
	if !c.Total().Equal(decimal.RequireFromString("5.50")) {
		t.Fatalf("expected 5.50, got %s", c.Total())
	}
}

func TestTotalIsIdempotent(t *testing.T) {
	c := add(Cart{}, line("p1", "A1", "19.99", 3))
	first := c.Total()
	second := c.Total()
	if !first.Equal(second) {
		t.Fatalf("repeated reads differ: %s vs %s", first, second)
	}
}

func TestTotalMatchesSumUnderArbitrarySequences(t *testing.T) {
	type op struct {
		kind      string
		productID string
		price     string
		qty       int
	}
	ops := []op{
		{kind: "add", productID: "p1", price: "3.25", qty: 2},
		{kind: "add", productID: "p2", price: "7.10", qty: 1},
		{kind: "add", productID: "p1", price: "3.25", qty: 4},
		{kind: "update", productID: "p2", qty: 5},
		{kind: "add", productID: "p3", price: "0.99", qty: 10},
		{kind: "remove", productID: "p1"},
		{kind: "update", productID: "p3", qty: 0},
		{kind: "add", productID: "p4", price: "42.00", qty: 1},
	}

	c := Cart{}
	for _, o := range ops {
		switch o.kind {
		case "add":
			c = add(c, line(o.productID, o.productID, o.price, o.qty))
		case "update":
			c = updateQuantity(c, o.productID, o.qty)
		case "remove":
			c = remove(c, o.productID)
		}

		expected := decimal.Zero
		for _, l := range c.Lines {
			expected = expected.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
		}
		if !c.Total().Equal(expected) {
			t.Fatalf("total %s does not match line sum %s after %+v", c.Total(), expected, o)
		}
	}

	if len(c.Lines) != 2 {
		t.Fatalf("expected p2 and p4 to remain, got %+v", c.Lines)
	}
}

func TestTransitionsDoNotAliasInput(t *testing.T) {
	base := add(Cart{}, line("p1", "A1", "10.00", 1))
	next := updateQuantity(base, "p1", 9)

	if base.Lines[0].Quantity != 1 {
		t.Fatalf("input cart mutated: %+v", base.Lines)
	}
	if next.Lines[0].Quantity != 9 {
		t.Fatalf("transition lost: %+v", next.Lines)
	}
}
