/*
Package ports defines the driven ports (interfaces) of the build workbench.

These interfaces decouple the session manager from the place where live
builds are kept.

# Key Interfaces

  - BuildStore: keeps the planners of open builds, keyed by build id.
*/
package ports
