/*
Package ports defines the driven ports (interfaces) for the Foyer shell.

These interfaces decouple the shell from external implementations, allowing
it to work with different cache backends and content sources.

# Key Interfaces

  - PageCache: Caches rendered shell output keyed by request path.
  - Watchable: Optional capability of a content source to signal changes.
*/
package ports
