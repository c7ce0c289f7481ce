/*
Package ports defines the driven ports (interfaces) of the automaton toolkit.

These interfaces decouple the catalog from where definitions live, so the
same automata can be served from a directory, a Loam repository, Redis or
memory.

# Key Interfaces

  - DefinitionLoader: read-only access to definitions by name.
  - DefinitionStore: a loader that can also save and delete definitions.
  - Catalog: the operations transports (HTTP, MCP, CLI) need.
*/
package ports
