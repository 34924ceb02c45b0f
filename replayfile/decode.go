// This file contains the top-level file decoder: header, body (keyframes
// plus the opaque network-stream bytes), and footer, wired together and
// handed off to the netstream package for the hard part.
//
// Parsing untrusted, possibly truncated or corrupt replay files is
// protected by a single top-level recover, the same shape as a
// sliceReader running off the end of its backing array.

package replayfile

import (
	"fmt"
	"log"
	"runtime"

	"github.com/rlreplay/rlrep/netstream"
	"github.com/rlreplay/rlrep/rep"
	"github.com/rlreplay/rlrep/rlcore"
)

// Config holds decoder configuration.
type Config struct {
	// Frames tells if the network-stream frame sequence is to be decoded.
	// When false, only the header and footer are returned.
	Frames bool

	// Debug tells if raw section bytes are to be retained on the
	// returned Replay.
	Debug bool

	_ struct{} // prevent unkeyed literals
}

// Decode decodes a complete Rocket League replay file from repData.
func Decode(repData []byte) (*rep.Replay, error) {
	return DecodeConfig(repData, Config{Frames: true})
}

// DecodeConfig decodes a Rocket League replay file from repData according
// to cfg.
func DecodeConfig(repData []byte, cfg Config) (r *rep.Replay, err error) {
	defer func() {
		if p := recover(); p != nil {
			log.Printf("replayfile: decode error: %v", p)
			buf := make([]byte, 2000)
			n := runtime.Stack(buf, false)
			log.Printf("replayfile: stack: %s", buf[:n])
			err = fmt.Errorf("replayfile: %v", p)
		}
	}()

	return decode(repData, cfg)
}

func decode(repData []byte, cfg Config) (*rep.Replay, error) {
	sr := &sliceReader{b: repData}

	header := decodeHeader(sr, cfg.Debug)

	bodyFooterLen := sr.getUint32()
	footerCRC := sr.getUint32()
	bodyStart := sr.pos

	sr.getStringList() // levels, not needed downstream
	decodeKeyFrameList(sr)

	netLen := sr.getUint32()
	netBytes := sr.readSlice(netLen)

	var debugData []byte
	if cfg.Debug {
		debugData = append([]byte(nil), sr.b[bodyStart:bodyStart+bodyFooterLen]...)
	}

	footer := decodeFooter(sr, footerCRC, cfg.Debug, debugData)

	r := &rep.Replay{Header: header, Footer: footer}

	if !cfg.Frames {
		return r, nil
	}

	ctx := rlcore.NewContext(
		header.EngineVersion, header.LicenseeVersion, header.NetVersion,
		header.BuildVersion, header.HasBuildVersion,
		header.MatchType,
		header.MaxChannels, header.HasMaxChannels,
	)

	classEntries := make([]netstream.ClassEntry, len(footer.Classes))
	for i, c := range footer.Classes {
		classEntries[i] = netstream.ClassEntry{ClassName: c.ClassName, ObjectIndex: c.ObjectIndex}
	}

	cacheEntries := make([]netstream.ClassCacheEntry, len(footer.ClassNetCacheRaw))
	for i, e := range footer.ClassNetCacheRaw {
		props := make([]netstream.CacheProperty, len(e.Properties))
		for j, p := range e.Properties {
			props[j] = netstream.CacheProperty{StreamID: p.StreamID, ObjectIndex: p.ObjectIndex}
		}
		cacheEntries[i] = netstream.ClassCacheEntry{
			ObjectID:   e.ObjectID,
			ParentID:   e.ParentID,
			CacheID:    e.CacheID,
			Properties: props,
		}
	}

	dispatch, err := netstream.ResolveClassDispatch(cacheEntries, classEntries, footer.Objects)
	if err != nil {
		return nil, fmt.Errorf("replayfile: resolving class dispatch: %w", err)
	}

	fd := netstream.NewFrameDecoder(ctx, footer.Objects, footer.Names, dispatch)
	br := netstream.NewBitReader(netBytes)

	frames, err := decodeFrames(fd, br, int(header.NumFrames))
	if err != nil {
		return nil, fmt.Errorf("replayfile: decoding frames: %w", err)
	}
	r.Frames = frames

	return r, nil
}

// decodeFrames drives fd across br until numFrames have been decoded (if
// known and positive), or until br has fewer than a byte of bits left.
func decodeFrames(fd *netstream.FrameDecoder, br *netstream.BitReader, numFrames int) ([]*rep.Frame, error) {
	var frames []*rep.Frame

	i := 0
	for {
		if numFrames > 0 && i >= numFrames {
			break
		}
		if numFrames <= 0 && br.Len() < 8 {
			break
		}

		f, err := fd.Decode(br, i)
		if err != nil {
			if de, ok := err.(*rlcore.DecodeError); ok && de.Kind == rlcore.ErrEndOfStream {
				break
			}
			return frames, err
		}

		frames = append(frames, toRepFrame(f))
		i++
	}

	return frames, nil
}

func toRepFrame(f *netstream.Frame) *rep.Frame {
	rf := &rep.Frame{Time: f.Time, Delta: f.Delta, Deleted: f.Deleted}

	for id, st := range f.NewActors {
		rf.New = append(rf.New, rep.NewActor{
			ActorID:    id,
			ObjectID:   st.ObjectID,
			ObjectName: st.ObjectName,
			NameID:     st.NameID,
			HasNameID:  st.HasNameID,
			Location:   st.SpawnLocation,
			Rotation:   st.SpawnRotation,
		})
	}

	for _, u := range f.Updated {
		rf.Updated = append(rf.Updated, rep.UpdatedActor{
			ActorID:    u.ActorID,
			ObjectName: u.Entry.ObjectName,
			Tag:        u.Entry.Tag,
			Value:      u.Value,
		})
	}

	return rf
}

// keyFrame is one body-block KeyFrame entry: a seek point into the
// network stream keyed by playback time. It is decoded to stay aligned
// with the stream but is not retained on rep.Replay (out of core scope).
type keyFrame struct {
	Time         float32
	Frame        uint32
	FilePosition uint32
}

func decodeKeyFrameList(sr *sliceReader) []keyFrame {
	n := sr.getUint32()
	out := make([]keyFrame, n)
	for i := range out {
		out[i] = keyFrame{
			Time:         sr.getFloat32(),
			Frame:        sr.getUint32(),
			FilePosition: sr.getUint32(),
		}
	}
	return out
}
