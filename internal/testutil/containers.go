//go:build integration

// Package testutil starts the MongoDB and Redis containers used by the
// integration tests.
package testutil

import (
	"context"
	"fmt"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	mongoImage = "mongo:7.0"
	redisImage = "redis:7-alpine"
)

// MongoDBContainer is a running settings store.
type MongoDBContainer struct {
	Container testcontainers.Container
	URI       string
}

// RedisContainer is a running shared rate cache.
type RedisContainer struct {
	Container testcontainers.Container
	URL       string
}

// SetupMongoDB starts a MongoDB container. Packages that run many tests
// should share one through SetupTestMain instead.
func SetupMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	c, err := mongodb.Run(ctx, mongoImage)
	if err != nil {
		return nil, fmt.Errorf("start mongodb container: %w", err)
	}

	uri, err := c.ConnectionString(ctx)
	if err != nil {
		_ = c.Terminate(ctx)
		return nil, fmt.Errorf("mongodb connection string: %w", err)
	}
	return &MongoDBContainer{Container: c, URI: uri}, nil
}

// SetupRedis starts a Redis container and returns its redis:// URL on db 0.
func SetupRedis(ctx context.Context) (*RedisContainer, error) {
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        redisImage,
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	if err != nil {
		return nil, fmt.Errorf("start redis container: %w", err)
	}

	endpoint, err := c.PortEndpoint(ctx, "6379/tcp", "redis")
	if err != nil {
		_ = c.Terminate(ctx)
		return nil, fmt.Errorf("redis endpoint: %w", err)
	}
	return &RedisContainer{Container: c, URL: endpoint + "/0"}, nil
}

// Cleanup terminates the container.
func (m *MongoDBContainer) Cleanup(ctx context.Context) error {
	return terminate(ctx, m.Container)
}

// Cleanup terminates the container.
func (r *RedisContainer) Cleanup(ctx context.Context) error {
	return terminate(ctx, r.Container)
}

func terminate(ctx context.Context, c testcontainers.Container) error {
	if c == nil {
		return nil
	}
	if err := c.Terminate(ctx); err != nil {
		return fmt.Errorf("terminate container: %w", err)
	}
	return nil
}
