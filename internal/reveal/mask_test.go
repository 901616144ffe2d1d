package reveal

import "testing"

func TestMaskFromDropsInvalid(t *testing.T) {
	m := MaskFrom([]int{0, 5, 5, -1, 625, 624})
	if m.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", m.Len())
	}
	for _, i := range []int{0, 5, 624} {
		if !m.Has(i) {
			t.Errorf("Has(%d) = false, want true", i)
		}
	}
	if m.Has(-1) || m.Has(625) {
		t.Error("Has() reported an out of range cell")
	}
}

func TestMaskAdd(t *testing.T) {
	var m Mask
	if !m.Add(10) {
		t.Fatal("first Add(10) = false")
	}
	if m.Add(10) {
		t.Error("second Add(10) = true, want false")
	}
	if m.Add(TotalPixels) {
		t.Error("Add(TotalPixels) = true, want false")
	}
	if m.Remaining() != TotalPixels-1 {
		t.Errorf("Remaining() = %d, want %d", m.Remaining(), TotalPixels-1)
	}
}

func TestMaskIndicesSorted(t *testing.T) {
	m := MaskFrom([]int{300, 2, 77})
	got := m.Indices()
	want := []int{2, 77, 300}
	if len(got) != len(want) {
		t.Fatalf("Indices() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Indices() = %v, want %v", got, want)
		}
	}
}

func TestMaskFull(t *testing.T) {
	var m Mask
	for i := 0; i < TotalPixels; i++ {
		m.Add(i)
	}
	if !m.Full() {
		t.Error("Full() = false after adding every cell")
	}
	if len(m.Hidden()) != 0 {
		t.Errorf("Hidden() = %v, want empty", m.Hidden())
	}
}

func TestIndex(t *testing.T) {
	if Index(0, 0) != 0 {
		t.Errorf("Index(0,0) = %d", Index(0, 0))
	}
	if Index(1, 0) != GridSize {
		t.Errorf("Index(1,0) = %d, want %d", Index(1, 0), GridSize)
	}
	if Index(24, 24) != TotalPixels-1 {
		t.Errorf("Index(24,24) = %d, want %d", Index(24, 24), TotalPixels-1)
	}
}
