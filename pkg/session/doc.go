// Package session provides server-side sessions for multi-step form journeys.
//
// A Session stores arbitrary values keyed by field name. It implements
// deeptranslate.SessionModel, which lets the values a user entered earlier in
// a journey select conditional wording later on.
//
// Two stores are included:
//
//   - [MemoryStore] for tests and single-instance deployments
//   - [RedisStore] for shared, expiring storage backed by go-redis
//
// Example:
//
//	client, err := redis.Open(ctx, redis.Config{URL: os.Getenv("REDIS_URL")})
//	store := session.NewRedisStore(client, session.WithRedisPrefix("hof:"))
//
//	app := hofware.New(
//	    hofware.WithSession(store),
//	)
//
// Values round-tripped through Redis are decoded from JSON, so a []string
// stored in one request comes back as []any in the next. Use [Value] with the
// decoded type, or let deeptranslate handle both shapes.
package session
