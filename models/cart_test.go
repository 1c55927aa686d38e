package models

import "testing"

func TestAddDeduplicatesByName(t *testing.T) {
	var c Cart

	c.Add("Crema", 35000, "/img/crema.jpg")
	c.Add("Crema", 35000, "/img/crema.jpg")
	c.Add("Crema", 35000, "/img/crema.jpg")

	if c.Len() != 1 {
		t.Fatalf("expected 1 line, got %d", c.Len())
	}
	if c.Lines[0].Quantity != 3 {
		t.Errorf("expected quantity 3, got %d", c.Lines[0].Quantity)
	}
}

func TestAddIsCaseSensitive(t *testing.T) {
	var c Cart

	c.Add("Crema", 35000, "")
	c.Add("crema", 35000, "")

	if c.Len() != 2 {
		t.Errorf("expected distinct lines for differently-cased names, got %d", c.Len())
	}
}

func TestAddAssignsStableDistinctIDs(t *testing.T) {
	var c Cart

	c.Add("Crema", 35000, "")
	c.Add("Serum", 48000, "")

	id := c.Lines[0].ID
	if id == c.Lines[1].ID {
		t.Error("expected distinct line ids")
	}

	c.Add("Crema", 35000, "")
	if c.Lines[0].ID != id {
		t.Error("line id changed after quantity bump")
	}
}

func TestTotalTracksMutations(t *testing.T) {
	var c Cart

	c.Add("Crema", 35000, "")
	c.Add("Crema", 35000, "")
	if c.Total() != 70000 {
		t.Fatalf("expected total 70000, got %d", c.Total())
	}

	c.Add("Serum", 48000, "")
	c.SetQuantity(1, 2)
	if c.Total() != 70000+96000 {
		t.Errorf("expected total after SetQuantity 166000, got %d", c.Total())
	}

	c.Remove(0)
	if c.Total() != 96000 {
		t.Errorf("expected total after Remove 96000, got %d", c.Total())
	}
}

func TestSetQuantityClampsToOne(t *testing.T) {
	var c Cart
	c.Add("Crema", 35000, "")

	for _, v := range []int{0, -1, -100} {
		if !c.SetQuantity(0, v) {
			t.Fatalf("SetQuantity(0, %d) reported missing line", v)
		}
		if got := c.Lines[0].Quantity; got != 1 {
			t.Errorf("SetQuantity(0, %d): quantity = %d, want 1", v, got)
		}
	}
}

func TestSetQuantityOutOfRange(t *testing.T) {
	var c Cart
	c.Add("Crema", 35000, "")

	if c.SetQuantity(1, 5) {
		t.Error("expected false for out-of-range index")
	}
	if c.SetQuantity(-1, 5) {
		t.Error("expected false for negative index")
	}
}

func TestRemoveShiftsIndices(t *testing.T) {
	var c Cart
	c.Add("Crema", 35000, "")
	c.Add("Serum", 48000, "")
	c.Add("Tónico", 29000, "")

	if !c.Remove(1) {
		t.Fatal("Remove(1) reported missing line")
	}
	if c.Len() != 2 {
		t.Fatalf("expected 2 lines, got %d", c.Len())
	}
	if c.Lines[1].Name != "Tónico" {
		t.Errorf("expected Tónico at index 1, got %q", c.Lines[1].Name)
	}
}

func TestItemCountSumsQuantities(t *testing.T) {
	var c Cart
	c.Add("Crema", 35000, "")
	c.Add("Crema", 35000, "")
	c.Add("Serum", 48000, "")

	if c.ItemCount() != 3 {
		t.Errorf("expected item count 3, got %d", c.ItemCount())
	}
	if c.Len() != 2 {
		t.Errorf("expected 2 lines, got %d", c.Len())
	}
}

func TestClear(t *testing.T) {
	var c Cart
	c.Add("Crema", 35000, "")
	c.Clear()

	if c.Len() != 0 || c.Total() != 0 || c.ItemCount() != 0 {
		t.Errorf("expected empty cart after Clear, got %d lines", c.Len())
	}
}
