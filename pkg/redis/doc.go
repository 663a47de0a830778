// Package redis opens go-redis clients for the session store and readiness
// checks.
//
//	var cfg redis.Config // REDIS_URL, REDIS_POOL_SIZE, ...
//	client, err := redis.Open(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	store := session.NewRedisStore(client)
//	checks := health.Checks{"redis": redis.Healthcheck(client)}
//
// Open pings the server and retries with linear backoff, so a process
// started alongside Redis tolerates a slow boot.
package redis
