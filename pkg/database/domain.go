package database

import "time"

// RedisConnection definition redis setting
type RedisConnection struct {
	Addr string
	// MasterName + SentinelAddrs switch the client to sentinel failover
	MasterName    string
	SentinelAddrs []string
	Password      string
	DB            int

	RetryCount    int
	RetryInterval time.Duration
}
