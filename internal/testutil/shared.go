//go:build integration

package testutil

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"
)

// Dependency names a container SetupTestMain starts for a package.
type Dependency int

const (
	MongoDB Dependency = iota
	Redis
)

// maxDBNameLength keeps generated names well under MongoDB's 64 byte limit
// once the uniqueness suffix is appended.
const maxDBNameLength = 50

var (
	sharedMu    sync.RWMutex
	sharedMongo *MongoDBContainer
	sharedRedis *RedisContainer
)

// SetupTestMain starts the requested containers once, runs the package
// tests against them and tears them down afterwards.
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.SetupTestMain(context.Background(), m, testutil.MongoDB))
//	}
func SetupTestMain(ctx context.Context, m *testing.M, deps ...Dependency) int {
	if err := startShared(ctx, deps); err != nil {
		_ = cleanupShared(ctx)
		panic(err)
	}

	code := m.Run()

	if err := cleanupShared(ctx); err != nil {
		// Docker reaps the containers anyway.
		_, _ = fmt.Fprintf(os.Stderr, "warning: shared container cleanup: %v\n", err)
	}
	return code
}

// SetupTestMainWithMongoDB is SetupTestMain with a MongoDB container only.
func SetupTestMainWithMongoDB(ctx context.Context, m *testing.M) int {
	return SetupTestMain(ctx, m, MongoDB)
}

func startShared(ctx context.Context, deps []Dependency) error {
	sharedMu.Lock()
	defer sharedMu.Unlock()

	for _, dep := range deps {
		switch dep {
		case MongoDB:
			if sharedMongo != nil {
				continue
			}
			c, err := SetupMongoDB(ctx)
			if err != nil {
				return err
			}
			sharedMongo = c
		case Redis:
			if sharedRedis != nil {
				continue
			}
			c, err := SetupRedis(ctx)
			if err != nil {
				return err
			}
			sharedRedis = c
		default:
			return fmt.Errorf("unknown test dependency %d", dep)
		}
	}
	return nil
}

func cleanupShared(ctx context.Context) error {
	sharedMu.Lock()
	defer sharedMu.Unlock()

	var errs []error
	if sharedMongo != nil {
		errs = append(errs, sharedMongo.Cleanup(ctx))
		sharedMongo = nil
	}
	if sharedRedis != nil {
		errs = append(errs, sharedRedis.Cleanup(ctx))
		sharedRedis = nil
	}
	return errors.Join(errs...)
}

// GetSharedContainerURI returns the shared MongoDB URI. It panics when the
// package TestMain did not ask for MongoDB.
func GetSharedContainerURI() string {
	sharedMu.RLock()
	defer sharedMu.RUnlock()

	if sharedMongo == nil {
		panic("shared MongoDB container not started; pass testutil.MongoDB to SetupTestMain")
	}
	return sharedMongo.URI
}

// GetSharedRedisURL returns the shared Redis URL. It panics when the
// package TestMain did not ask for Redis.
func GetSharedRedisURL() string {
	sharedMu.RLock()
	defer sharedMu.RUnlock()

	if sharedRedis == nil {
		panic("shared Redis container not started; pass testutil.Redis to SetupTestMain")
	}
	return sharedRedis.URL
}

// SanitizeDBName turns a test name into a database name unique to this run.
// Characters MongoDB rejects in database names become underscores.
func SanitizeDBName(testName string) string {
	var b strings.Builder
	for _, r := range testName {
		if strings.ContainsRune(`/\. "$*<>:|?`, r) {
			b.WriteByte('_')
			continue
		}
		b.WriteRune(r)
	}

	name := b.String()
	if len(name) > maxDBNameLength {
		name = name[:maxDBNameLength]
	}
	return fmt.Sprintf("%s_%d", name, time.Now().UnixNano()%1000000)
}

// KeyPrefix returns a Redis key prefix unique to the test, so tests sharing
// one container never read each other's entries.
func KeyPrefix(testName string) string {
	return SanitizeDBName(testName) + ":"
}
