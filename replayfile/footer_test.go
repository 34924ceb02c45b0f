package replayfile

import "testing"

func TestDecodeClassList(t *testing.T) {
	var b []byte
	b = append(b, encodeUint32(2)...)
	b = append(b, encodeString8("TAGame.Ball_TA")...)
	b = append(b, encodeUint32(7)...)
	b = append(b, encodeString8("TAGame.Car_TA")...)
	b = append(b, encodeUint32(9)...)

	sr := &sliceReader{b: b}
	classes := decodeClassList(sr)

	if len(classes) != 2 {
		t.Fatalf("decodeClassList returned %d entries, want 2", len(classes))
	}
	if classes[0].ClassName != "TAGame.Ball_TA" || classes[0].ObjectIndex != 7 {
		t.Errorf("classes[0] = %+v", classes[0])
	}
	if classes[1].ClassName != "TAGame.Car_TA" || classes[1].ObjectIndex != 9 {
		t.Errorf("classes[1] = %+v", classes[1])
	}
}

func TestDecodeClassNetCacheList(t *testing.T) {
	var b []byte
	b = append(b, encodeUint32(1)...) // one entry
	b = append(b, encodeUint32(40)...) // object_id
	b = append(b, encodeUint32(20)...) // parent_id
	b = append(b, encodeUint32(38)...) // cache_id
	b = append(b, encodeUint32(1)...)  // one cache property
	b = append(b, encodeUint32(5)...)  // object_index
	b = append(b, encodeUint32(0)...)  // stream_id

	sr := &sliceReader{b: b}
	entries := decodeClassNetCacheList(sr)

	if len(entries) != 1 {
		t.Fatalf("decodeClassNetCacheList returned %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e.ObjectID != 40 || e.ParentID != 20 || e.CacheID != 38 {
		t.Errorf("entry = %+v", e)
	}
	if len(e.Properties) != 1 || e.Properties[0].ObjectIndex != 5 || e.Properties[0].StreamID != 0 {
		t.Errorf("entry.Properties = %+v", e.Properties)
	}
}

func TestDecodeFooterObjectsNamesClasses(t *testing.T) {
	var b []byte
	b = append(b, encodeUint32(0)...) // debug strings
	b = append(b, encodeUint32(0)...) // tick marks
	b = append(b, encodeUint32(0)...) // packages

	b = append(b, encodeUint32(1)...) // objects
	b = append(b, encodeString16("TAGame.Default__PRI_TA")...)

	b = append(b, encodeUint32(1)...) // names
	b = append(b, encodeString16("Player1")...)

	b = append(b, encodeUint32(0)...) // classes
	b = append(b, encodeUint32(0)...) // class net cache

	sr := &sliceReader{b: b}
	footer := decodeFooter(sr, 0, false, nil)

	if len(footer.Objects) != 1 || footer.Objects[0] != "TAGame.Default__PRI_TA" {
		t.Errorf("Objects = %v", footer.Objects)
	}
	if len(footer.Names) != 1 || footer.Names[0] != "Player1" {
		t.Errorf("Names = %v", footer.Names)
	}
}
