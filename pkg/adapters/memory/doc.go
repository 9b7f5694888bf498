// Package memory provides a process-local BuildStore.
package memory
