package config

import (
	"log"

	"github.com/redis/rueidis"
)

// NewRedisClient connects the client backing the per-user generation lock.
func NewRedisClient(addr string) rueidis.Client {
	client, err := rueidis.NewClient(
		rueidis.ClientOption{
			InitAddress: []string{addr},
		},
	)
	if err != nil {
		log.Fatalf("failed to create redis client: %v", err)
	}

	return client
}
