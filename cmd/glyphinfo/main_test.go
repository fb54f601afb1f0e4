package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/glyphinfo"
	"github.com/hupe1980/glyphinfo/blobstore"
)

const (
	baseXML = `<glyphData>
	<glyph unicode="17F6" name="lekattakpramMuoy-khmer" category="Number" subCategory="Decimal Digit" script="khmer" production="uni17F6" altNames="pramMuoyLekattak-khmer" description="KHMER SYMBOL LEK ATTAK PRAM-MUOY"/>
	<glyph unicode="0041" name="A" category="Letter" case="upper" script="latin" description="LATIN CAPITAL LETTER A"/>
</glyphData>`

	overrideXML = `<glyphData>
	<glyph unicode="0041" name="A" category="Letter" case="upper" script="latin" description="OVERRIDE"/>
</glyphData>`
)

func writeInputs(t *testing.T) (dir string, inputs []string) {
	t.Helper()
	dir = t.TempDir()
	for name, body := range map[string]string{"base.xml": baseXML, "override.xml": overrideXML} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	return dir, []string{filepath.Join(dir, "base.xml"), filepath.Join(dir, "override.xml")}
}

func convert(t *testing.T, extra ...string) string {
	t.Helper()
	dir, inputs := writeInputs(t)
	out := filepath.Join(dir, "out", "glyphdata.snap")

	args := append([]string{"convert"}, extra...)
	args = append(args, inputs...)
	args = append(args, out)

	var stderr bytes.Buffer
	require.NoError(t, run(context.Background(), args, &bytes.Buffer{}, &stderr), stderr.String())
	return out
}

func TestConvertAndLookup(t *testing.T) {
	tests := []struct {
		name  string
		flags []string
	}{
		{"defaults", nil},
		{"cbor zstd", []string{"-format", "cbor", "-compression", "zstd"}},
		{"binary lz4", []string{"-compression", "lz4", "-strict-duplicates"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := convert(t, tt.flags...)

			var stdout bytes.Buffer
			err := run(context.Background(), []string{"lookup", "-snapshot", snap, "-by", "unicode", "U+17F6", "0041"}, &stdout, &bytes.Buffer{})
			require.NoError(t, err)

			lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
			require.Len(t, lines, 2)
			assert.Contains(t, lines[0], "U+17F6 KHMER SYMBOL LEK ATTAK PRAM-MUOY")
			assert.Contains(t, lines[0], "Number/Decimal Digit")
			assert.Contains(t, lines[0], "khmer")
			assert.Contains(t, lines[1], `"OVERRIDE"`)
		})
	}
}

func TestLookup_Keys(t *testing.T) {
	snap := convert(t)

	tests := []struct {
		by  string
		key string
	}{
		{"name", "lekattakpramMuoy-khmer"},
		{"production", "uni17F6"},
		{"alt", "pramMuoyLekattak-khmer"},
		{"unicode", "17f6"},
	}
	for _, tt := range tests {
		t.Run(tt.by, func(t *testing.T) {
			var stdout bytes.Buffer
			err := run(context.Background(), []string{"lookup", "-snapshot", snap, "-by", tt.by, tt.key}, &stdout, &bytes.Buffer{})
			require.NoError(t, err)
			assert.Contains(t, stdout.String(), "production=uni17F6")
		})
	}

	t.Run("missing", func(t *testing.T) {
		var stdout bytes.Buffer
		err := run(context.Background(), []string{"lookup", "-snapshot", snap, "nope"}, &stdout, &bytes.Buffer{})
		require.Error(t, err)
		assert.Contains(t, stdout.String(), "nope\tnot found")
	})

	t.Run("invalid codepoint", func(t *testing.T) {
		err := run(context.Background(), []string{"lookup", "-snapshot", snap, "-by", "unicode", "zz"}, &bytes.Buffer{}, &bytes.Buffer{})
		assert.ErrorContains(t, err, "invalid codepoint")
	})
}

func TestExport(t *testing.T) {
	snap := convert(t)

	for _, c := range []string{"json", "go-json"} {
		t.Run(c, func(t *testing.T) {
			var stdout bytes.Buffer
			err := run(context.Background(), []string{"export", "-snapshot", snap, "-codec", c}, &stdout, &bytes.Buffer{})
			require.NoError(t, err)

			lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
			require.Len(t, lines, 2)
			assert.Contains(t, lines[0], `"name":"lekattakpramMuoy-khmer"`)
			assert.Contains(t, lines[0], `"subCategory":"Decimal Digit"`)
			assert.Contains(t, lines[1], `"description":"OVERRIDE"`)
		})
	}
}

func TestConvert_Failures(t *testing.T) {
	dir, inputs := writeInputs(t)

	t.Run("missing input", func(t *testing.T) {
		err := run(context.Background(), []string{"convert", filepath.Join(dir, "nope.xml"), filepath.Join(dir, "o.snap")}, &bytes.Buffer{}, &bytes.Buffer{})
		require.Error(t, err)
		assert.NoFileExists(t, filepath.Join(dir, "o.snap"))
	})

	t.Run("bad vocabulary", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.xml")
		require.NoError(t, os.WriteFile(bad, []byte(`<glyphData><glyph name="x" category="Nonsense"/></glyphData>`), 0o644))
		err := run(context.Background(), []string{"convert", inputs[0], bad, filepath.Join(dir, "o.snap")}, &bytes.Buffer{}, &bytes.Buffer{})
		assert.ErrorContains(t, err, "Nonsense")
		assert.NoFileExists(t, filepath.Join(dir, "o.snap"))
	})

	t.Run("usage", func(t *testing.T) {
		err := run(context.Background(), []string{"convert", inputs[0]}, &bytes.Buffer{}, &bytes.Buffer{})
		assert.ErrorIs(t, err, errUsage)

		err = run(context.Background(), []string{"convert", "-format", "yaml", inputs[0], filepath.Join(dir, "o.snap")}, &bytes.Buffer{}, &bytes.Buffer{})
		assert.Error(t, err)

		err = run(context.Background(), nil, &bytes.Buffer{}, &bytes.Buffer{})
		assert.ErrorIs(t, err, errUsage)

		err = run(context.Background(), []string{"frobnicate"}, &bytes.Buffer{}, &bytes.Buffer{})
		assert.ErrorIs(t, err, errUsage)
	})
}

func TestConvert_LogFormat(t *testing.T) {
	dir, inputs := writeInputs(t)
	out := filepath.Join(dir, "glyphdata.snap")

	var stderr bytes.Buffer
	args := append([]string{"convert", "-log-level", "info", "-log-format", "json"}, inputs...)
	require.NoError(t, run(context.Background(), append(args, out), &bytes.Buffer{}, &stderr))

	lines := strings.Split(strings.TrimSpace(stderr.String()), "\n")
	require.NotEmpty(t, lines)
	for _, line := range lines {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
	}
	assert.Contains(t, stderr.String(), `"msg":"snapshot written"`)

	err := run(context.Background(), append([]string{"convert", "-log-format", "xml"}, inputs[0], out), &bytes.Buffer{}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "invalid -log-format")
}

func TestOpenStore_CachesRemoteLocations(t *testing.T) {
	t.Setenv("MINIO_ACCESS_KEY", "test")
	t.Setenv("MINIO_SECRET_KEY", "test")
	logger := glyphinfo.NoopLogger()
	cacheDir := t.TempDir()

	bs, name, err := openStore(context.Background(), "minio://127.0.0.1:1/fonts/glyphs/base.xml?insecure=true", cacheDir, logger)
	require.NoError(t, err)
	assert.Equal(t, "base.xml", name)
	assert.IsType(t, &blobstore.CachingStore{}, bs)

	bs, _, err = openStore(context.Background(), "minio://127.0.0.1:1/fonts/glyphs/base.xml?insecure=true", "", logger)
	require.NoError(t, err)
	assert.NotEqual(t, reflect.TypeOf(&blobstore.CachingStore{}), reflect.TypeOf(bs))

	bs, _, err = openStore(context.Background(), filepath.Join(cacheDir, "local.xml"), cacheDir, logger)
	require.NoError(t, err)
	assert.IsType(t, &blobstore.LocalStore{}, bs)
}

func TestConvert_RemoteInputFromCache(t *testing.T) {
	t.Setenv("MINIO_ACCESS_KEY", "test")
	t.Setenv("MINIO_SECRET_KEY", "test")
	dir, inputs := writeInputs(t)

	// Seed the cache so the unreachable endpoint is never contacted.
	cacheDir := filepath.Join(dir, "cache")
	cached := filepath.Join(cacheDir, "minio", "fonts", "glyphs")
	require.NoError(t, os.MkdirAll(cached, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cached, "base.xml"), []byte(baseXML), 0o644))

	out := filepath.Join(dir, "remote.snap")
	args := []string{"convert", "-cache-dir", cacheDir, "minio://127.0.0.1:1/fonts/glyphs/base.xml?insecure=true", inputs[1], out}
	var stderr bytes.Buffer
	require.NoError(t, run(context.Background(), args, &bytes.Buffer{}, &stderr), stderr.String())

	var stdout bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"lookup", "-snapshot", out, "-by", "production", "uni17F6"}, &stdout, &bytes.Buffer{}))
	assert.Contains(t, stdout.String(), "KHMER SYMBOL LEK ATTAK PRAM-MUOY")
}

func TestParseCodepoint(t *testing.T) {
	tests := []struct {
		in   string
		want rune
		ok   bool
	}{
		{"17F6", 0x17F6, true},
		{"U+17F6", 0x17F6, true},
		{"u+0041", 'A', true},
		{"110000", 0, false},
		{"U+", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseCodepoint(tt.in)
			if !tt.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
