/*
Package automaton is a toolkit for deterministic finite automata (DFA).

It builds automata over a finite alphabet of single-character symbols, decides
whether input strings belong to their language, derives new automata by
interchanging two symbols, and renders them in a stable text format.

# Concept

The core engine lives in pkg/dfa and knows nothing about files or transports.
Automata are described by definitions (pkg/domain.Definition) that are stored
as YAML, JSON or markdown documents and loaded through a ports.DefinitionLoader.
The Catalog in this package ties a loader to the engine and reports every
decision through lifecycle hooks, so the same automata can be served over a
CLI, an HTTP API or the Model Context Protocol.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/automaton"
	)

	func main() {
		// Reads definitions from ./machines (markdown, YAML or JSON documents)
		cat, err := automaton.New("./machines")
		if err != nil {
			log.Fatal(err)
		}

		ok, err := cat.Accepts(context.Background(), "div3", "110")
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(ok) // true
	}

Automata can also be assembled in code, without any loader:

	d := dfa.New()
	_ = d.AddState("q0")
	d.AddSigma('a')
	_ = d.SetStart("q0")
	_ = d.SetFinal("q0")
	_ = d.AddTransition("q0", "q0", 'a')
	fmt.Print(d.String())
*/
package automaton
