package getter

import (
	"context"
	"fmt"
	"os"
	"path"
	"strings"
	"time"

	"github.com/hashicorp/go-getter"
	"github.com/sethvargo/go-retry"
	"golang.org/x/time/rate"

	"github.com/hgupta2363/metabase/error_helpers"
)

// fetchLimiter paces remote fetches so loading a batch of documents cannot
// hammer a source host.
var fetchLimiter = rate.NewLimiter(rate.Limit(10), 5)

// GetFile resolves sourcePath to a local file.
//   - if the path exists in the file system it is returned as-is, subject to
//     the permitted-roots check
//   - otherwise it is treated as a go-getter url, downloaded into a fresh
//     directory under tmpDir, and the downloaded path is returned
func GetFile(ctx context.Context, sourcePath, tmpDir string) (string, error) {
	if sourcePath == "" {
		return "", fmt.Errorf("source cannot be empty")
	}

	if _, err := os.Stat(sourcePath); err == nil {
		if !pathPermitted(sourcePath) {
			return "", fmt.Errorf("local source %s is not under a permitted root path", sourcePath)
		}
		return sourcePath, nil
	}

	destDir, err := createTempDirForGet(tmpDir)
	if err != nil {
		return "", err
	}
	dest := path.Join(destDir, destFileName(sourcePath))

	if err := fetchWithRetry(ctx, dest, sourcePath); err != nil {
		return "", err
	}
	return dest, nil
}

func fetchWithRetry(ctx context.Context, dest, sourcePath string) error {
	if err := fetchLimiter.Wait(ctx); err != nil {
		return err
	}

	backoff, err := retry.NewFibonacci(100 * time.Millisecond)
	if err != nil {
		return err
	}
	err = retry.Do(ctx, retry.WithMaxRetries(3, backoff), func(ctx context.Context) error {
		if err := getter.GetFile(dest, sourcePath); err != nil {
			// remote fetches fail transiently, retry them all
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		if error_helpers.IsContextCancelledError(err) {
			return err
		}
		return fmt.Errorf("failed to get file specified by the source %s: %s", sourcePath, err.Error())
	}
	return nil
}

// destFileName extracts the file name a downloaded source should be stored
// under: the last path segment, with any query string dropped.
func destFileName(sourcePath string) string {
	name := sourcePath
	if idx := strings.Index(name, "?"); idx != -1 {
		name = name[:idx]
	}
	name = strings.TrimSuffix(name, "/")
	parts := strings.Split(name, "/")
	return parts[len(parts)-1]
}

// create a uniquely named sub-directory
func createTempDirForGet(tmpDir string) (string, error) {
	dest := path.Join(tmpDir, timestamp())
	if err := os.MkdirAll(dest, 0755); err != nil {
		return "", err
	}
	return dest, nil
}

// get the current timestamp
func timestamp() string {
	return time.Now().UTC().Format("2006-01-02T15-04-05.000000000")
}
