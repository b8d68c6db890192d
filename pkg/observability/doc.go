/*
Package observability turns the navigator's lifecycle hooks into Prometheus metrics.

Metrics live on their own registry so several browsers (or tests) can coexist in one process.
*/
package observability
