package vault

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/cameportal/internal/common"
	"github.com/dmitrijs2005/cameportal/internal/logging"
	"github.com/dmitrijs2005/cameportal/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stepClock returns start, start+step, start+2*step, ...
func stepClock(start time.Time, step time.Duration) func() time.Time {
	var mu sync.Mutex
	next := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t := next
		next = next.Add(step)
		return t
	}
}

var t0 = time.Date(2024, 5, 6, 14, 30, 0, 0, time.UTC)

func newFSVault(t *testing.T) (*Vault, string) {
	t.Helper()
	root := t.TempDir()
	b, err := NewFSBackend(root)
	require.NoError(t, err)
	return New(b, logging.Nop{}, WithClock(stepClock(t0, time.Second))), root
}

func TestStore_TwoUploadsAreTwoVersions(t *testing.T) {
	ctx := context.Background()
	v, root := newFSVault(t)

	first, err := v.Store(ctx, "ClubNorte", models.DocumentAFIP, []byte("v1"), "constancia.PDF")
	require.NoError(t, err)
	second, err := v.Store(ctx, "ClubNorte", models.DocumentAFIP, []byte("v2"), "constancia.pdf")
	require.NoError(t, err)

	assert.Equal(t, "afip_20240506_143000.pdf", first.FileName)
	assert.Equal(t, "afip_20240506_143001.pdf", second.FileName)
	assert.Equal(t, "constancia.PDF", first.OriginalFileName)
	assert.Equal(t, int64(2), second.Size)

	entries, err := os.ReadDir(filepath.Join(root, "ClubNorte"))
	require.NoError(t, err)
	var files []string
	for _, e := range entries {
		files = append(files, e.Name())
	}
	assert.ElementsMatch(t, []string{"afip_20240506_143000.pdf", "afip_20240506_143001.pdf", LogFileName}, files)

	latest, err := v.Latest(ctx, "ClubNorte", models.DocumentAFIP)
	require.NoError(t, err)
	assert.Equal(t, second.FileName, latest.FileName)

	data, err := v.Open(ctx, *latest)
	require.NoError(t, err)
	assert.Equal(t, "v2", string(data))

	lines, err := v.Log(ctx, "ClubNorte")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"2024-05-06 14:30:00: Subido afip - afip_20240506_143000.pdf",
		"2024-05-06 14:30:01: Subido afip - afip_20240506_143001.pdf",
	}, lines)
}

func TestLatest_NoUploads(t *testing.T) {
	v, _ := newFSVault(t)
	_, err := v.Latest(context.Background(), "ClubNorte", models.DocumentIGJ)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	lines, err := v.Log(context.Background(), "ClubNorte")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestVersions_FiltersByType(t *testing.T) {
	ctx := context.Background()
	v, root := newFSVault(t)

	_, err := v.Store(ctx, "acme", models.DocumentRoster, []byte("r"), "cd.pdf")
	require.NoError(t, err)
	_, err = v.Store(ctx, "acme", models.DocumentIGJ, []byte("i"), "igj.pdf")
	require.NoError(t, err)
	_, err = v.Store(ctx, "acme", models.DocumentRoster, []byte("r2"), "cd.pdf")
	require.NoError(t, err)

	// noise the vault must ignore
	require.NoError(t, os.WriteFile(filepath.Join(root, "acme", ".tmp-123"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(root, "acme", "notes.txt"), []byte("x"), 0o600))

	roster, err := v.Versions(ctx, "acme", models.DocumentRoster)
	require.NoError(t, err)
	require.Len(t, roster, 2)
	assert.Equal(t, "comision_directiva_20240506_143000.pdf", roster[0].FileName)
	assert.Equal(t, "comision_directiva_20240506_143002.pdf", roster[1].FileName)
	assert.True(t, time.Date(2024, 5, 6, 14, 30, 2, 0, time.Local).Equal(roster[1].UploadedAt))

	igj, err := v.Versions(ctx, "acme", models.DocumentIGJ)
	require.NoError(t, err)
	assert.Len(t, igj, 1)

	afip, err := v.Versions(ctx, "acme", models.DocumentAFIP)
	require.NoError(t, err)
	assert.Empty(t, afip)
}

func TestStore_Validation(t *testing.T) {
	ctx := context.Background()
	v, _ := newFSVault(t)

	_, err := v.Store(ctx, "acme", "passport", []byte("x"), "a.pdf")
	assert.ErrorIs(t, err, common.ErrorValidation)

	for _, name := range []string{"", "  ", ".", ".."} {
		_, err = v.Store(ctx, name, models.DocumentAFIP, []byte("x"), "a.pdf")
		assert.ErrorIs(t, err, common.ErrorValidation, "entity %q", name)
	}
}

func TestOpen_RejectsForeignNames(t *testing.T) {
	v, _ := newFSVault(t)
	_, err := v.Open(context.Background(), models.StoredDocument{Entity: "acme", Type: models.DocumentAFIP, FileName: "../../etc/passwd"})
	assert.ErrorIs(t, err, common.ErrorValidation)

	_, err = v.Open(context.Background(), models.StoredDocument{Entity: "acme", Type: models.DocumentAFIP, FileName: "igj_20240101_000000.pdf"})
	assert.ErrorIs(t, err, common.ErrorValidation)

	_, err = v.Open(context.Background(), models.StoredDocument{Entity: "acme", Type: models.DocumentAFIP, FileName: "afip_20240101_000000.pdf"})
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestEntityDir(t *testing.T) {
	cases := map[string]string{
		"ClubNorte":        "ClubNorte",
		"Club_Sur":         "Club_Sur",
		"Club/Norte":       "Club%2FNorte",
		`Club\Norte`:       "Club%5CNorte",
		"Club%2FNorte":     "Club%252FNorte",
		"../x":             "..%2Fx",
		"a\x00b":           "a%00b",
		"Asociación Oeste": "Asociación Oeste",
	}
	for in, want := range cases {
		got, err := EntityDir(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []string{"", "  ", ".", ".."} {
		_, err := EntityDir(bad)
		assert.ErrorIs(t, err, common.ErrorValidation, bad)
	}
}

func TestEntityDir_DistinctNamesDoNotCollide(t *testing.T) {
	names := []string{"Club/Sur", "Club_Sur", `Club\Sur`, "Club%2FSur", "Club%5CSur"}
	seen := map[string]string{}
	for _, n := range names {
		dir, err := EntityDir(n)
		require.NoError(t, err)
		if prev, ok := seen[dir]; ok {
			t.Fatalf("%q and %q both map to %q", prev, n, dir)
		}
		seen[dir] = n
	}
}

func TestStore_SimilarNamesKeepSeparateVersions(t *testing.T) {
	ctx := context.Background()
	v, _ := newFSVault(t)

	stored, err := v.Store(ctx, "Club_Sur", models.DocumentIGJ, []byte("sur"), "igj.pdf")
	require.NoError(t, err)

	_, err = v.Latest(ctx, "Club/Sur", models.DocumentIGJ)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = v.Open(ctx, models.StoredDocument{Entity: "Club/Sur", Type: models.DocumentIGJ, FileName: stored.FileName})
	assert.ErrorIs(t, err, common.ErrorNotFound)

	lines, err := v.Log(ctx, "Club/Sur")
	require.NoError(t, err)
	assert.Empty(t, lines)

	latest, err := v.Latest(ctx, "Club_Sur", models.DocumentIGJ)
	require.NoError(t, err)
	assert.Equal(t, stored.FileName, latest.FileName)
}

func TestFileNameExtension(t *testing.T) {
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	cases := map[string]string{
		"estatuto.pdf":      "estatuto_20240102_030405.pdf",
		"SCAN.JPG":          "estatuto_20240102_030405.jpg",
		"archive.tar.gz":    "estatuto_20240102_030405.gz",
		"noext":             "estatuto_20240102_030405.bin",
		`C:\docs\file.docx`: "estatuto_20240102_030405.docx",
		"weird.p$d#f":       "estatuto_20240102_030405.pdf",
	}
	for in, want := range cases {
		assert.Equal(t, want, FileName(models.DocumentEstatuto, at, in), in)
	}
}

type flakyBackend struct {
	Backend
	putErr, appendErr, removeErr error
	removed                      []string
}

func (f *flakyBackend) Put(ctx context.Context, key string, data []byte) error {
	if f.putErr != nil {
		return f.putErr
	}
	return f.Backend.Put(ctx, key, data)
}

func (f *flakyBackend) AppendLine(ctx context.Context, key, line string) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	return f.Backend.AppendLine(ctx, key, line)
}

func (f *flakyBackend) Remove(ctx context.Context, key string) error {
	f.removed = append(f.removed, key)
	if f.removeErr != nil {
		return f.removeErr
	}
	return f.Backend.Remove(ctx, key)
}

func TestStore_LogFailureRemovesFile(t *testing.T) {
	ctx := context.Background()
	fsb, err := NewFSBackend(t.TempDir())
	require.NoError(t, err)
	fb := &flakyBackend{Backend: fsb, appendErr: errors.New("disk full")}
	v := New(fb, logging.Nop{}, WithClock(stepClock(t0, time.Second)))

	_, err = v.Store(ctx, "acme", models.DocumentIGJ, []byte("x"), "igj.pdf")
	require.ErrorIs(t, err, common.ErrorPartialWrite)
	assert.Equal(t, []string{"acme/igj_20240506_143000.pdf"}, fb.removed)

	versions, err := v.Versions(ctx, "acme", models.DocumentIGJ)
	require.NoError(t, err)
	assert.Empty(t, versions, "no document without a log line")
}

func TestStore_LogFailureOrphanStillReported(t *testing.T) {
	fsb, err := NewFSBackend(t.TempDir())
	require.NoError(t, err)
	fb := &flakyBackend{Backend: fsb, appendErr: errors.New("disk full"), removeErr: errors.New("read-only")}
	v := New(fb, logging.Nop{})

	_, err = v.Store(context.Background(), "acme", models.DocumentIGJ, []byte("x"), "igj.pdf")
	assert.ErrorIs(t, err, common.ErrorPartialWrite)
}

func TestStore_WriteFailure(t *testing.T) {
	fsb, err := NewFSBackend(t.TempDir())
	require.NoError(t, err)
	v := New(&flakyBackend{Backend: fsb, putErr: errors.New("io")}, logging.Nop{})

	_, err = v.Store(context.Background(), "acme", models.DocumentIGJ, []byte("x"), "igj.pdf")
	assert.ErrorIs(t, err, common.ErrorStorageUnavailable)

	lines, err := v.Log(context.Background(), "acme")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestStore_ConcurrentUploadsKeepLogLinesWhole(t *testing.T) {
	ctx := context.Background()
	v, _ := newFSVault(t)

	const n = 25
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := v.Store(ctx, "acme", models.DocumentEstatuto, []byte(fmt.Sprint(i)), "e.pdf")
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	lines, err := v.Log(ctx, "acme")
	require.NoError(t, err)
	require.Len(t, lines, n)
	for _, l := range lines {
		assert.Regexp(t, `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}: Subido estatuto - estatuto_\d{8}_\d{6}\.pdf$`, l)
	}

	versions, err := v.Versions(ctx, "acme", models.DocumentEstatuto)
	require.NoError(t, err)
	assert.Len(t, versions, n)
}

func TestDownloadURL_FSBackendHasNone(t *testing.T) {
	v, _ := newFSVault(t)
	url, err := v.DownloadURL(context.Background(), models.StoredDocument{Entity: "acme", Type: models.DocumentAFIP, FileName: "afip_20240101_000000.pdf"}, time.Minute)
	require.NoError(t, err)
	assert.Empty(t, url)
}
