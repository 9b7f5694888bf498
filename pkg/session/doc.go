/*
Package session implements the build workbench.

A Manager keeps any number of independent builds open at once and
serialises every access to one build with a reference-counted mutex, so
concurrent transports (HTTP, MCP) can drive the same build safely while
different builds proceed in parallel.
*/
package session
