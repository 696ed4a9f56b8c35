package vterm

import "testing"

func TestParamsPushAndGetSingle(t *testing.T) {
	var p Params
	p.Push(5)
	p.Push(0)
	if got := p.GetSingle(0, 1); got != 5 {
		t.Fatalf("GetSingle(0) = %d, want 5", got)
	}
	if got := p.GetSingle(1, 9); got != 9 {
		t.Fatalf("GetSingle(1) with zero value should fall back to default, got %d", got)
	}
	if got := p.GetSingle(2, 7); got != 7 {
		t.Fatalf("GetSingle out of range should return default, got %d", got)
	}
	if p.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", p.Len())
	}
}

func TestParamsExtendWithoutPrimaryFails(t *testing.T) {
	var p Params
	if p.Extend(5) {
		t.Fatalf("Extend on an empty container should fail")
	}
}

// Regression for the Feed bug: a subparameter terminated by the CSI final
// byte (not another ':') must still extend the cluster rather than being
// mistaken for a new primary, since the parser calls Feed once per value
// regardless of what ended it.
func TestParamsFeedSubparamTerminatedByFinalByte(t *testing.T) {
	var p Params
	// Simulates "38:2:196:0:0m": every value after the first is a
	// subparameter, since only ';' (via StartCluster) starts a new
	// primary — ':' (and the eventual final byte) never does.
	p.Feed(38)
	p.Feed(2)
	p.Feed(196)
	p.Feed(0)
	p.Feed(0)
	if p.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 (everything after the first Feed belongs to one cluster)", p.Len())
	}
	if got := p.SubCount(0); got != 4 {
		t.Fatalf("SubCount(0) = %d, want 4", got)
	}
}

func TestParamsFeedSemicolonStartsNewPrimary(t *testing.T) {
	var p Params
	p.Feed(1)
	p.StartCluster()
	p.Feed(2)
	p.StartCluster()
	p.Feed(3)
	if p.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", p.Len())
	}
	if got := p.GetSingle(0, 0); got != 1 {
		t.Fatalf("param 0 = %d, want 1", got)
	}
	if got := p.GetSingle(2, 0); got != 3 {
		t.Fatalf("param 2 = %d, want 3", got)
	}
}

func TestParamsSubCountAndGetSub(t *testing.T) {
	var p Params
	p.Push(38)
	p.Extend(2)
	p.Extend(196)
	if got := p.SubCount(0); got != 2 {
		t.Fatalf("SubCount(0) = %d, want 2", got)
	}
	if got := p.GetSub(0, 0, -1); got != 2 {
		t.Fatalf("GetSub(0,0) = %d, want 2", got)
	}
	if got := p.GetSub(0, 1, -1); got != 196 {
		t.Fatalf("GetSub(0,1) = %d, want 196", got)
	}
	if got := p.GetSub(0, 2, -1); got != -1 {
		t.Fatalf("GetSub(0,2) out of range = %d, want default -1", got)
	}
}

func TestParamsOverflow(t *testing.T) {
	var p Params
	for i := 0; i < maxParams; i++ {
		if !p.Push(int32(i)) {
			t.Fatalf("Push unexpectedly failed before reaching maxParams at i=%d", i)
		}
	}
	if p.Push(999) {
		t.Fatalf("Push should fail once maxParams slots are full")
	}
	if p.Len() != maxParams {
		t.Fatalf("Len() = %d, want %d", p.Len(), maxParams)
	}
}

func TestParamsReset(t *testing.T) {
	var p Params
	p.Push(1)
	p.Extend(2)
	p.Reset()
	if p.Len() != 0 {
		t.Fatalf("Len() after Reset = %d, want 0", p.Len())
	}
	if !p.Push(5) {
		t.Fatalf("Push after Reset should succeed")
	}
}
