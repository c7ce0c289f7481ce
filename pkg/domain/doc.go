/*
Package domain contains the shared vocabulary of the automaton toolkit.

It is kept free of I/O and of the engine itself so that loaders, stores and
transports can exchange automata without importing each other.

# Key Entities

  - Definition: the document form of a DFA (states, sigma, start, final, transitions).
  - Sentinel errors: the failure taxonomy shared by the engine and its adapters.
  - LifecycleHooks: callbacks fired on acceptance decisions and swaps.
*/
package domain
