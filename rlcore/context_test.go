package rlcore

import "testing"

func TestNewContextRL223VersionFlag(t *testing.T) {
	tests := []struct {
		build string
		want  bool
	}{
		{"221120.42953.406184", true},
		{"221119.50000.0", false},
		{"221121.0.0", true},
	}

	for _, tc := range tests {
		ctx := NewContext(868, 20, 10, tc.build, true, "Online", 1023, true)
		if ctx.IsRL223 != tc.want {
			t.Errorf("NewContext(build=%q).IsRL223 = %v, want %v", tc.build, ctx.IsRL223, tc.want)
		}
	}
}

func TestNewContextNoBuildVersion(t *testing.T) {
	ctx := NewContext(868, 20, 10, "", false, "Online", 1023, true)
	if ctx.IsRL223 {
		t.Error("IsRL223 = true with no build version present, want false")
	}
}

func TestNewContextIsLAN(t *testing.T) {
	ctx := NewContext(868, 20, 10, "", false, "Lan", 1023, true)
	if !ctx.IsLAN {
		t.Error("IsLAN = false for MatchType \"Lan\"")
	}

	ctx = NewContext(868, 20, 10, "", false, "Online", 1023, true)
	if ctx.IsLAN {
		t.Error("IsLAN = true for MatchType \"Online\"")
	}
}

func TestNewContextActorIDDefaults(t *testing.T) {
	ctx := NewContext(868, 20, 10, "", false, "Online", 0, false)
	if ctx.ActorIDMax != 1023 {
		t.Errorf("ActorIDMax = %d, want 1023 when MaxChannels absent", ctx.ActorIDMax)
	}
	if ctx.ActorIDSize != 9 {
		t.Errorf("ActorIDSize = %d, want 9 for max 1023", ctx.ActorIDSize)
	}
}

func TestNewContextActorIDFromMaxChannels(t *testing.T) {
	ctx := NewContext(868, 20, 10, "", false, "Online", 255, true)
	if ctx.ActorIDMax != 255 {
		t.Errorf("ActorIDMax = %d, want 255", ctx.ActorIDMax)
	}
	if ctx.ActorIDSize != 7 {
		t.Errorf("ActorIDSize = %d, want 7 for max 255", ctx.ActorIDSize)
	}
}

func TestCompareBuildVersions(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.2.3", "1.2.3", 0},
		{"1.2.3", "1.2.4", -1},
		{"2.0.0", "1.9.9", 1},
		{"221121.0.0", "221120.42953.406184", 1},
	}
	for _, tc := range tests {
		if got := compareBuildVersions(tc.a, tc.b); got != tc.want {
			t.Errorf("compareBuildVersions(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}
