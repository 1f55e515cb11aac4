package rds

import "testing"

func TestRDSStringSequentialCompletion(t *testing.T) {
	s := NewRDSString(8)
	if s.IsComplete() {
		t.Fatalf("a fresh RDSString should not be complete")
	}

	msg := "ABCDEFGH"
	for i := 0; i < len(msg); i++ {
		s.Set(i, RDSChar{Code: msg[i]})
	}

	if !s.IsComplete() {
		t.Fatalf("a string written sequentially end to end should be complete")
	}
	if got := s.GetLastCompleteString(); got != msg {
		t.Errorf("GetLastCompleteString() = %q, want %q", got, msg)
	}
	if got := s.String(); got != msg {
		t.Errorf("String() = %q, want %q", got, msg)
	}
}

func TestRDSStringOutOfOrderIsNotSequential(t *testing.T) {
	s := NewRDSString(4)
	s.Set(2, RDSChar{Code: 'C'})
	s.Set(0, RDSChar{Code: 'A'})
	s.Set(1, RDSChar{Code: 'B'})
	s.Set(3, RDSChar{Code: 'D'})

	// Position 2 arrived out of order, breaking the contiguous run, so
	// completion can only come later once 0,1,2,3 are written back to
	// back without a gap.
	if s.IsComplete() {
		t.Fatalf("completion should require an unbroken sequential run")
	}
}

func TestRDSStringTerminatorEndsEarly(t *testing.T) {
	s := NewRDSString(8)
	s.Set(0, RDSChar{Code: 'H'})
	s.Set(1, RDSChar{Code: 'I'})
	s.Set(2, RDSChar{Code: terminatorChar})

	if !s.IsComplete() {
		t.Fatalf("a terminator should complete the string early")
	}
	if got := s.GetLastCompleteString(); got != "HI" {
		t.Errorf("GetLastCompleteString() = %q, want %q", got, "HI")
	}
}

func TestRDSStringSetPair(t *testing.T) {
	s := NewRDSString(4)
	s.SetPair(0, RDSChar{Code: 'A'}, RDSChar{Code: 'B'})
	s.SetPair(2, RDSChar{Code: 'C'}, RDSChar{Code: 'D'})

	if !s.IsComplete() {
		t.Fatalf("two sequential pairs covering the whole string should complete it")
	}
	if got := s.GetLastCompleteString(); got != "ABCD" {
		t.Errorf("GetLastCompleteString() = %q, want %q", got, "ABCD")
	}
}

func TestRDSStringClearResetsCompletion(t *testing.T) {
	s := NewRDSString(4)
	s.SetPair(0, RDSChar{Code: 'A'}, RDSChar{Code: 'B'})
	s.SetPair(2, RDSChar{Code: 'C'}, RDSChar{Code: 'D'})
	if !s.IsComplete() {
		t.Fatalf("precondition: string should be complete before Clear")
	}

	s.Clear()
	if s.HasPreviouslyReceivedTerminators() {
		t.Errorf("Clear should not leave a stale terminator flag")
	}
	s.Set(0, RDSChar{Code: 'Z'})
	if s.IsComplete() {
		t.Errorf("a single character after Clear should not be complete")
	}
}

func TestRDSStringGetLastCompleteSubstring(t *testing.T) {
	s := NewRDSString(8)
	for i, c := range "RADIOTXT" {
		s.Set(i, RDSChar{Code: byte(c)})
	}
	if !s.HasChars(0, 5) {
		t.Fatalf("HasChars(0, 5) should be true once the full buffer is complete")
	}
	if got := s.GetLastCompleteSubstring(0, 5); got != "RADIO" {
		t.Errorf("GetLastCompleteSubstring(0, 5) = %q, want %q", got, "RADIO")
	}
}
