package glyphinfo

import (
	"context"
	_ "embed"
	"os"
	"sync"

	"github.com/hupe1980/glyphinfo/blobstore/location"
)

// SnapshotEnv names the environment variable that points Default at a
// snapshot. The value is a path or a blob location such as
// s3://bucket/prefix/glyphdata.snap.
const SnapshotEnv = "GLYPHINFO_SNAPSHOT"

//go:generate go run ./cmd/glyphinfo convert data/glyphdata.xml data/glyphdata.snap

// embeddedXML is the source of embeddedSnapshot.
//
//go:embed data/glyphdata.xml
var embeddedXML []byte

//go:embed data/glyphdata.snap
var embeddedSnapshot []byte

var defaultData = NewLazy(func() (*GlyphData, error) {
	return loadDefault(context.Background())
})

// Default returns the process-wide catalog, building it on first use.
//
// If SnapshotEnv is set the named snapshot is loaded, otherwise the embedded
// snapshot of the sample GlyphData is decoded. Later calls return the same
// value and error.
func Default() (*GlyphData, error) {
	return defaultData.Get()
}

func loadDefault(ctx context.Context, opts ...Option) (*GlyphData, error) {
	if raw := os.Getenv(SnapshotEnv); raw != "" {
		return LoadLocation(ctx, raw, opts...)
	}
	return fromSnapshot(ctx, embeddedSnapshot, "embedded:glyphdata.snap", applyOptions(opts))
}

// LoadLocation loads a snapshot from a path or blob location string.
func LoadLocation(ctx context.Context, raw string, opts ...Option) (*GlyphData, error) {
	bs, name, err := location.Open(ctx, raw)
	if err != nil {
		return nil, err
	}
	return LoadSnapshot(ctx, bs, name, opts...)
}

// Lazy builds a GlyphData once, on the first call to Get.
type Lazy struct {
	get func() (*GlyphData, error)
}

// NewLazy returns a Lazy around load. load runs at most once, even when Get
// is called concurrently.
func NewLazy(load func() (*GlyphData, error)) *Lazy {
	return &Lazy{get: sync.OnceValues(load)}
}

// Get returns the result of the load function.
func (l *Lazy) Get() (*GlyphData, error) {
	return l.get()
}
