package netstream

import "testing"

func TestResolveClassDispatchReverseScanInheritance(t *testing.T) {
	// Neither class_object_id (40/41/52) has a Classes-table entry here, so
	// the ParentClass tier never matches and every inheritance decision
	// below forces the reverse-scan-by-cache_id fallback (step 4).
	objects := []string{
		"Engine.PlayerReplicationInfo:Ping",       // 0
		"Engine.PlayerReplicationInfo:PlayerName", // 1
		"Engine.PlayerReplicationInfo:Team",       // 2
	}

	entries := []ClassCacheEntry{
		{
			ObjectID: 40, ParentID: 20, CacheID: 38,
			Properties: []CacheProperty{{StreamID: 0, ObjectIndex: 0}},
		},
		{
			ObjectID: 41, ParentID: 38, CacheID: 38,
			Properties: []CacheProperty{{StreamID: 1, ObjectIndex: 1}},
		},
		{
			ObjectID: 52, ParentID: 38, CacheID: 48,
			Properties: []CacheProperty{{StreamID: 2, ObjectIndex: 2}},
		},
	}

	dispatch, err := ResolveClassDispatch(entries, nil, objects)
	if err != nil {
		t.Fatalf("ResolveClassDispatch: %v", err)
	}

	d52, ok := dispatch[52]
	if !ok {
		t.Fatal("no dispatch table resolved for object 52")
	}

	// object 52 must inherit transitively: its own stream_id 2, plus
	// object 41's (which itself inherited object 40's), via the
	// most-recent-prior-cache_id-38 scan at each step.
	for sid, wantName := range map[uint32]string{
		0: "Engine.PlayerReplicationInfo:Ping",
		1: "Engine.PlayerReplicationInfo:PlayerName",
		2: "Engine.PlayerReplicationInfo:Team",
	} {
		entry, ok := d52.Lookup(sid)
		if !ok {
			t.Errorf("stream_id %d missing from object 52's resolved dispatch", sid)
			continue
		}
		if entry.ObjectName != wantName {
			t.Errorf("stream_id %d resolved to %q, want %q", sid, entry.ObjectName, wantName)
		}
	}
}

func TestResolveClassDispatchStandaloneEntry(t *testing.T) {
	objects := []string{"Engine.PlayerReplicationInfo:Ping"}
	entries := []ClassCacheEntry{
		{
			ObjectID: 10, ParentID: 0, CacheID: 5,
			Properties: []CacheProperty{{StreamID: 0, ObjectIndex: 0}},
		},
	}

	dispatch, err := ResolveClassDispatch(entries, nil, objects)
	if err != nil {
		t.Fatalf("ResolveClassDispatch: %v", err)
	}

	d, ok := dispatch[10]
	if !ok {
		t.Fatal("no dispatch table resolved for object 10")
	}
	if d.MaxStreamID != 1 {
		t.Errorf("MaxStreamID = %d, want 1", d.MaxStreamID)
	}
}
