// Package location resolves snapshot locations given as paths or URLs to a
// blob store and a blob name.
//
// Supported forms:
//
//	glyphs.snapshot                          local path
//	file:///var/lib/glyphs.snapshot          local path
//	s3://bucket/prefix/glyphs.snapshot       Amazon S3 (?region=, ?endpoint=)
//	minio://host:9000/bucket/glyphs.snapshot MinIO (?insecure=true for plain HTTP)
package location

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hupe1980/glyphinfo/blobstore"
	"github.com/hupe1980/glyphinfo/blobstore/minio"
	"github.com/hupe1980/glyphinfo/blobstore/s3"
)

// Scheme identifies a storage backend.
type Scheme string

const (
	SchemeFile  Scheme = "file"
	SchemeS3    Scheme = "s3"
	SchemeMinIO Scheme = "minio"
)

// ErrInvalidLocation is returned for locations that cannot be parsed.
var ErrInvalidLocation = errors.New("invalid snapshot location")

// Location is a parsed snapshot location.
type Location struct {
	Scheme Scheme
	// Endpoint is the MinIO host or a custom S3 endpoint.
	Endpoint string
	Bucket   string
	// Prefix is the directory for file locations and the key prefix otherwise.
	Prefix string
	Name   string
	Region string
	Secure bool
}

// Parse parses raw.
func Parse(raw string) (Location, error) {
	if raw == "" {
		return Location{}, fmt.Errorf("%w: empty", ErrInvalidLocation)
	}
	if !strings.Contains(raw, "://") {
		return fileLocation(raw)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return Location{}, fmt.Errorf("%w: %w", ErrInvalidLocation, err)
	}

	switch Scheme(u.Scheme) {
	case SchemeFile:
		return fileLocation(filepath.FromSlash(u.Path))
	case SchemeS3:
		prefix, name := splitKey(u.Path)
		loc := Location{
			Scheme:   SchemeS3,
			Bucket:   u.Host,
			Prefix:   prefix,
			Name:     name,
			Region:   u.Query().Get("region"),
			Endpoint: u.Query().Get("endpoint"),
			Secure:   true,
		}
		return loc, loc.validate()
	case SchemeMinIO:
		bucket, rest, _ := strings.Cut(strings.TrimPrefix(u.Path, "/"), "/")
		prefix, name := splitKey(rest)
		insecure, _ := strconv.ParseBool(u.Query().Get("insecure"))
		loc := Location{
			Scheme:   SchemeMinIO,
			Endpoint: u.Host,
			Bucket:   bucket,
			Prefix:   prefix,
			Name:     name,
			Secure:   !insecure,
		}
		if loc.Endpoint == "" {
			return Location{}, fmt.Errorf("%w: %q: missing endpoint", ErrInvalidLocation, raw)
		}
		return loc, loc.validate()
	default:
		return Location{}, fmt.Errorf("%w: unsupported scheme %q", ErrInvalidLocation, u.Scheme)
	}
}

func fileLocation(p string) (Location, error) {
	loc := Location{Scheme: SchemeFile, Prefix: filepath.Dir(p), Name: filepath.Base(p)}
	if strings.HasSuffix(p, "/") || strings.HasSuffix(p, string(filepath.Separator)) {
		return Location{}, fmt.Errorf("%w: %q is a directory", ErrInvalidLocation, p)
	}
	return loc, nil
}

func splitKey(p string) (prefix, name string) {
	p = strings.TrimPrefix(p, "/")
	dir, name := path.Split(p)
	return strings.TrimSuffix(dir, "/"), name
}

func (l Location) validate() error {
	switch {
	case l.Bucket == "":
		return fmt.Errorf("%w: missing bucket", ErrInvalidLocation)
	case l.Name == "":
		return fmt.Errorf("%w: missing object name", ErrInvalidLocation)
	}
	return nil
}

// Open connects to the location's backend.
func (l Location) Open(ctx context.Context) (blobstore.BlobStore, error) {
	switch l.Scheme {
	case SchemeFile:
		return blobstore.NewLocalStore(l.Prefix), nil
	case SchemeS3:
		opts := []s3.Option{s3.WithPrefix(l.Prefix)}
		if l.Region != "" {
			opts = append(opts, s3.WithRegion(l.Region))
		}
		if l.Endpoint != "" {
			opts = append(opts, s3.WithEndpoint(l.Endpoint))
		}
		return s3.New(ctx, l.Bucket, opts...)
	case SchemeMinIO:
		return minio.NewFromEnv(l.Endpoint, l.Secure, l.Bucket, l.Prefix)
	default:
		return nil, fmt.Errorf("%w: unsupported scheme %q", ErrInvalidLocation, l.Scheme)
	}
}

// Open parses raw and connects to its backend. It returns the store and the
// blob name within it.
func Open(ctx context.Context, raw string) (blobstore.BlobStore, string, error) {
	loc, err := Parse(raw)
	if err != nil {
		return nil, "", err
	}
	store, err := loc.Open(ctx)
	if err != nil {
		return nil, "", err
	}
	return store, loc.Name, nil
}
