package rds

import (
	"reflect"
	"testing"
)

func TestAltFreqListMethodA(t *testing.T) {
	var a AltFreqList

	a.Insert(224 + 2) // header: 2 frequencies follow
	a.Insert(1)        // 87.6 MHz
	a.Insert(2)        // 87.7 MHz

	if !a.IsComplete() {
		t.Fatalf("AltFreqList should be complete once the header count is satisfied")
	}

	want := []int{87600, 87700}
	if got := a.GetRawList(); !reflect.DeepEqual(got, want) {
		t.Errorf("GetRawList() = %v, want %v", got, want)
	}
	if a.IsMethodB() {
		t.Errorf("an even-length list with no repeated tuned frequency should not look like Method B")
	}
}

func TestAltFreqListMethodB(t *testing.T) {
	var a AltFreqList

	a.Insert(224 + 3) // header: 3 frequencies follow
	a.Insert(10)      // tuned frequency
	a.Insert(10)      // pair 1: tuned, variant
	a.Insert(20)
	a.Insert(10) // pair 2: tuned, variant
	a.Insert(30)

	if !a.IsComplete() {
		t.Fatalf("AltFreqList should be complete once the header count is satisfied")
	}
	if !a.IsMethodB() {
		t.Errorf("a tuned-frequency-repeating odd-length list should be recognized as Method B")
	}
}

func TestAltFreqListHeaderResets(t *testing.T) {
	var a AltFreqList
	a.Insert(224 + 1)
	a.Insert(1)
	if !a.IsComplete() {
		t.Fatalf("precondition: list should be complete after its first header+code")
	}

	// A second, different header restarts accumulation.
	a.Insert(224 + 2)
	if a.IsComplete() {
		t.Errorf("a new header should reset completion until its own count is satisfied")
	}
}

func TestAltFreqListClear(t *testing.T) {
	var a AltFreqList
	a.Insert(224 + 1)
	a.Insert(1)
	a.Clear()

	if a.IsComplete() {
		t.Errorf("Clear should reset completion")
	}
	if len(a.GetRawList()) != 0 {
		t.Errorf("Clear should empty the raw list")
	}
}

func TestAltFreqListIgnoresFillerAndNotToBeUsed(t *testing.T) {
	var a AltFreqList
	a.Insert(224 + 2)
	a.Insert(0)   // not to be used
	a.Insert(205) // filler
	a.Insert(1)
	a.Insert(2)

	want := []int{87600, 87700}
	if got := a.GetRawList(); !reflect.DeepEqual(got, want) {
		t.Errorf("GetRawList() = %v, want %v", got, want)
	}
}
