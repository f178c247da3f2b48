package storage

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/confdesk/pkg/domain"
)

// ErrBadSignature returned for missing, expired or forged signed URLs
var ErrBadSignature = errors.New("bad signature")

// LocalOpts configures a Local store
type LocalOpts struct {
	Dir        string        // root directory of objects
	SigningKey string        // HMAC key of signed urls
	BaseURL    string        // public url of the service, signed urls are <BaseURL>/files/<path>
	TTL        time.Duration // signed url lifetime, 1h if zero
	Now        func() time.Time
}

// Local is a filesystem object store
type Local struct {
	root    string
	key     []byte
	baseURL string
	ttl     time.Duration
	now     func() time.Time
}

// NewLocal makes the store, creating the root directory if needed
func NewLocal(opts LocalOpts) (*Local, error) {
	if opts.SigningKey == "" {
		return nil, errors.New("signing key is required")
	}
	if err := os.MkdirAll(opts.Dir, 0o750); err != nil {
		return nil, fmt.Errorf("create storage dir %s: %w", opts.Dir, err)
	}
	res := &Local{root: opts.Dir, key: []byte(opts.SigningKey), baseURL: strings.TrimSuffix(opts.BaseURL, "/"),
		ttl: opts.TTL, now: opts.Now}
	if res.ttl <= 0 {
		res.ttl = time.Hour
	}
	if res.now == nil {
		res.now = time.Now
	}
	return res, nil
}

// Upload stores r under objPath. Existing objects are never overwritten.
func (l *Local) Upload(ctx context.Context, objPath string, r io.Reader) error {
	clean, err := cleanPath(objPath)
	if err != nil {
		return err
	}
	if err = ctx.Err(); err != nil {
		return err
	}
	full := filepath.Join(l.root, filepath.FromSlash(clean))
	if err = os.MkdirAll(filepath.Dir(full), 0o750); err != nil {
		return fmt.Errorf("create object dir: %w", err)
	}
	fh, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640) //nolint:gosec // path is cleaned
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("object %s: %w", clean, domain.ErrConflict)
		}
		return fmt.Errorf("create object %s: %w", clean, err)
	}
	n, err := io.Copy(fh, r)
	if closeErr := fh.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(full)
		return fmt.Errorf("write object %s: %w", clean, err)
	}
	lgr.Printf("[DEBUG] stored object %s, %d bytes", clean, n)
	return nil
}

// SignedURL returns a time-limited download url of an existing object
func (l *Local) SignedURL(_ context.Context, objPath string) (string, error) {
	clean, err := cleanPath(objPath)
	if err != nil {
		return "", err
	}
	if _, err = os.Stat(filepath.Join(l.root, filepath.FromSlash(clean))); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("object %s: %w", clean, domain.ErrNotFound)
		}
		return "", fmt.Errorf("stat object %s: %w", clean, err)
	}
	expires := strconv.FormatInt(l.now().Add(l.ttl).Unix(), 10)
	segments := strings.Split(clean, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	q := url.Values{"expires": {expires}, "sig": {l.sign(clean, expires)}}
	return l.baseURL + "/files/" + strings.Join(segments, "/") + "?" + q.Encode(), nil
}

// Verify checks the signature and expiry of a signed url request
func (l *Local) Verify(objPath, expires, sig string) error {
	clean, err := cleanPath(objPath)
	if err != nil {
		return ErrBadSignature
	}
	exp, err := strconv.ParseInt(expires, 10, 64)
	if err != nil || sig == "" {
		return ErrBadSignature
	}
	if l.now().Unix() > exp {
		return fmt.Errorf("expired: %w", ErrBadSignature)
	}
	if !hmac.Equal([]byte(sig), []byte(l.sign(clean, expires))) {
		return ErrBadSignature
	}
	return nil
}

// Open opens a stored object for reading
func (l *Local) Open(objPath string) (*os.File, error) {
	clean, err := cleanPath(objPath)
	if err != nil {
		return nil, err
	}
	fh, err := os.Open(filepath.Join(l.root, filepath.FromSlash(clean))) //nolint:gosec // path is cleaned
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("object %s: %w", clean, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("open object %s: %w", clean, err)
	}
	return fh, nil
}

func (l *Local) sign(objPath, expires string) string {
	mac := hmac.New(sha256.New, l.key)
	mac.Write([]byte(objPath + "\n" + expires))
	return hex.EncodeToString(mac.Sum(nil))
}

// cleanPath resolves objPath inside the store root, ".." can't climb above it
func cleanPath(objPath string) (string, error) {
	clean := strings.TrimPrefix(path.Clean("/"+objPath), "/")
	if clean == "" || strings.ContainsRune(clean, 0) {
		return "", fmt.Errorf("bad object path %q: %w", objPath, domain.ErrValidation)
	}
	return clean, nil
}
