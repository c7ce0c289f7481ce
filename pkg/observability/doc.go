/*
Package observability provides tools for monitoring the automaton catalog.

It turns the catalog lifecycle hooks into Prometheus metrics and structured
log lines, so every acceptance decision and swap can be counted and audited.
*/
package observability
