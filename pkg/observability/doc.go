/*
Package observability turns planner lifecycle events into Prometheus
metrics and structured audit logs.

Both are delivered as domain.LifecycleHooks and can be combined with
LifecycleHooks.Merge before being passed to skilltree.WithLifecycleHooks.
*/
package observability
