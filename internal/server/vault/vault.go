// Package vault keeps uploaded compliance evidence: one directory (or key
// prefix) per entity, every upload a new timestamped version, and an
// append-only upload log next to the files.
package vault

import (
	"context"
	"errors"
	"fmt"
	"path"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/dmitrijs2005/cameportal/internal/common"
	"github.com/dmitrijs2005/cameportal/internal/lockx"
	"github.com/dmitrijs2005/cameportal/internal/logging"
	"github.com/dmitrijs2005/cameportal/internal/server/models"
)

const (
	// LogFileName is the per-entity upload log.
	LogFileName = "uploads_log.txt"

	stampLayout    = "20060102_150405"
	logStampLayout = "2006-01-02 15:04:05"
	defaultExt     = "bin"
)

var versionPattern = regexp.MustCompile(`^([a-z_]+)_(\d{8}_\d{6})\.([^.]+)$`)

// Vault stores and retrieves document versions.
type Vault struct {
	backend Backend
	log     logging.Logger
	now     func() time.Time
	locks   lockx.Keyed
}

type Option func(*Vault)

// WithClock overrides time.Now for version names and log lines.
func WithClock(now func() time.Time) Option {
	return func(v *Vault) { v.now = now }
}

func New(backend Backend, log logging.Logger, opts ...Option) *Vault {
	v := &Vault{backend: backend, log: log.With("module", "vault"), now: time.Now}
	for _, o := range opts {
		o(v)
	}
	return v
}

// EntityDir maps an entity name to its directory name. Path separators,
// NUL and '%' itself are percent-encoded, so distinct names never share a
// directory; "." and ".." are rejected.
func EntityDir(entity string) (string, error) {
	if strings.TrimSpace(entity) == "" || entity == "." || entity == ".." {
		return "", fmt.Errorf("%w: invalid entity name %q", common.ErrorValidation, entity)
	}
	var b strings.Builder
	for i := 0; i < len(entity); i++ {
		switch c := entity[i]; c {
		case '%', '/', '\\', 0:
			fmt.Fprintf(&b, "%%%02X", c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}

// FileName builds the stored name of a version uploaded at t.
func FileName(t models.DocumentType, at time.Time, originalFilename string) string {
	return fmt.Sprintf("%s_%s.%s", t, at.Format(stampLayout), extension(originalFilename))
}

func extension(name string) string {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(strings.ReplaceAll(name, "\\", "/")), "."))
	ext = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return -1
	}, ext)
	if ext == "" {
		return defaultExt
	}
	return ext
}

// LogLine renders one upload log entry.
func LogLine(at time.Time, t models.DocumentType, fileName string) string {
	return fmt.Sprintf("%s: Subido %s - %s", at.Format(logStampLayout), t, fileName)
}

// Store writes a new version of the document and then records it in the
// upload log, both under the entity's lock. If the log cannot be written
// the new file is removed again and common.ErrorPartialWrite is returned.
func (v *Vault) Store(ctx context.Context, entity string, t models.DocumentType, data []byte, originalFilename string) (*models.StoredDocument, error) {
	if _, ok := models.ParseDocumentType(string(t)); !ok {
		return nil, fmt.Errorf("%w: unknown document type %q", common.ErrorValidation, t)
	}
	dir, err := EntityDir(entity)
	if err != nil {
		return nil, err
	}

	unlock := v.locks.Lock(dir)
	defer unlock()

	at := v.now()
	name := FileName(t, at, originalFilename)
	key := path.Join(dir, name)

	if err := v.backend.Put(ctx, key, data); err != nil {
		v.log.Error(ctx, "document write failed", "entity", entity, "type", t, "error", err)
		return nil, fmt.Errorf("%w: %v", common.ErrorStorageUnavailable, err)
	}

	if err := v.backend.AppendLine(ctx, path.Join(dir, LogFileName), LogLine(at, t, name)); err != nil {
		v.log.Error(ctx, "upload log append failed", "entity", entity, "file", name, "error", err)
		// the caller may already be cancelled; the orphan must still go
		if rmErr := v.backend.Remove(context.WithoutCancel(ctx), key); rmErr != nil {
			v.log.Error(ctx, "orphaned document left in vault", "entity", entity, "file", name, "error", rmErr)
		}
		return nil, fmt.Errorf("%w: upload log: %v", common.ErrorPartialWrite, err)
	}

	v.log.Info(ctx, "document stored", "entity", entity, "type", t, "file", name, "size", len(data))

	return &models.StoredDocument{
		Entity:           entity,
		Type:             t,
		FileName:         name,
		OriginalFileName: originalFilename,
		UploadedAt:       at.Truncate(time.Second),
		Size:             int64(len(data)),
	}, nil
}

// Versions lists every stored version of a document, oldest first.
func (v *Vault) Versions(ctx context.Context, entity string, t models.DocumentType) ([]models.StoredDocument, error) {
	dir, err := EntityDir(entity)
	if err != nil {
		return nil, err
	}
	objs, err := v.backend.List(ctx, dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorStorageUnavailable, err)
	}

	var out []models.StoredDocument
	for _, o := range objs {
		m := versionPattern.FindStringSubmatch(o.Name)
		if m == nil || m[1] != string(t) {
			continue
		}
		at, err := time.ParseInLocation(stampLayout, m[2], time.Local)
		if err != nil {
			continue
		}
		out = append(out, models.StoredDocument{
			Entity:     entity,
			Type:       t,
			FileName:   o.Name,
			UploadedAt: at,
			Size:       o.Size,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FileName < out[j].FileName })
	return out, nil
}

// Latest returns the version with the greatest file name, or
// common.ErrorNotFound when nothing was uploaded.
func (v *Vault) Latest(ctx context.Context, entity string, t models.DocumentType) (*models.StoredDocument, error) {
	versions, err := v.Versions(ctx, entity, t)
	if err != nil {
		return nil, err
	}
	if len(versions) == 0 {
		return nil, common.ErrorNotFound
	}
	latest := versions[len(versions)-1]
	return &latest, nil
}

// Open reads the content of a stored version.
func (v *Vault) Open(ctx context.Context, doc models.StoredDocument) ([]byte, error) {
	key, err := v.keyOf(doc)
	if err != nil {
		return nil, err
	}
	data, err := v.backend.Get(ctx, key)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", common.ErrorStorageUnavailable, err)
	}
	return data, nil
}

// DownloadURL returns a time-limited direct link when the backend supports
// it, or "" otherwise.
func (v *Vault) DownloadURL(ctx context.Context, doc models.StoredDocument, ttl time.Duration) (string, error) {
	p, ok := v.backend.(Presigner)
	if !ok {
		return "", nil
	}
	key, err := v.keyOf(doc)
	if err != nil {
		return "", err
	}
	return p.PresignGet(ctx, key, ttl)
}

func (v *Vault) keyOf(doc models.StoredDocument) (string, error) {
	dir, err := EntityDir(doc.Entity)
	if err != nil {
		return "", err
	}
	if m := versionPattern.FindStringSubmatch(doc.FileName); m == nil || m[1] != string(doc.Type) {
		return "", fmt.Errorf("%w: invalid document file name %q", common.ErrorValidation, doc.FileName)
	}
	return path.Join(dir, doc.FileName), nil
}

// Log returns the upload log lines of an entity, oldest first.
func (v *Vault) Log(ctx context.Context, entity string) ([]string, error) {
	dir, err := EntityDir(entity)
	if err != nil {
		return nil, err
	}
	data, err := v.backend.Get(ctx, path.Join(dir, LogFileName))
	if errors.Is(err, common.ErrorNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorStorageUnavailable, err)
	}
	text := strings.TrimRight(string(data), "\n")
	if text == "" {
		return nil, nil
	}
	return strings.Split(text, "\n"), nil
}
