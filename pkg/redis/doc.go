// Package redis provides the Redis connection plumbing used by the Redis
// session store: config via environment variables, a retrying Connect, and a
// health check closure.
package redis
