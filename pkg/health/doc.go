// Package health provides HTTP handlers for liveness and readiness probes.
//
// [LivenessHandler] always answers healthy. [ReadinessHandler] runs a set of
// named [Checks] in parallel under a shared timeout and answers 503 when any
// check fails. Both respond with JSON:
//
//	{"status":"unhealthy","checks":{"ses":{"status":"unhealthy","error":"health: check timeout"}}}
//
// Register them on any router:
//
//	r.Get("/healthz", health.LivenessHandler())
//	r.Get("/readyz", health.ReadinessHandler(health.Checks{
//	    "ses": sender.Ping,
//	}, health.WithTimeout(3*time.Second)))
package health
