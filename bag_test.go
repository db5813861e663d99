package gioplot

import "testing"

func TestBagRefCounting(t *testing.T) {
	var bag objectBag[string, int]
	if existing := bag.add("a", 1); existing {
		t.Fatal("first add reported existing")
	}
	if existing := bag.add("a", 99); !existing {
		t.Fatal("second add did not report existing")
	}
	if v, _ := bag.get("a"); v != 1 {
		t.Errorf("second add replaced data: got %d, want 1", v)
	}
	if removed := bag.remove("a"); removed {
		t.Fatal("first remove reported full removal")
	}
	if !bag.contains("a") {
		t.Fatal("key gone after first remove")
	}
	if removed := bag.remove("a"); !removed {
		t.Fatal("second remove did not report full removal")
	}
	if bag.contains("a") {
		t.Fatal("key present after full removal")
	}
	if removed := bag.remove("a"); removed {
		t.Fatal("removing absent key reported removal")
	}
}

func TestBagOrder(t *testing.T) {
	var bag objectBag[string, int]
	bag.add("x", 0)
	bag.add("y", 0)
	bag.add("z", 0)
	bag.add("y", 0)
	bag.remove("x")
	var order []string
	bag.each(func(k string, _ int) bool {
		order = append(order, k)
		return true
	})
	if len(order) != 2 || order[0] != "y" || order[1] != "z" {
		t.Errorf("order %v, want [y z]", order)
	}
	if bag.len() != 2 {
		t.Errorf("len %d, want 2", bag.len())
	}
}
