// Package schema converts between automaton definition documents and the
// dfa engine.
//
// A definition is read from YAML or JSON (Decode), or from a generic map as
// handed over by RPC layers (DecodeMap). Validate reports every structural
// problem at once; Build turns a valid definition into a *dfa.DFA and Export
// goes the other way.
//
//	def, err := schema.DecodeFile("div3.yaml")
//	if err != nil {
//	    return err
//	}
//	d, err := schema.Build(def)
//	if err != nil {
//	    // errors.Is(err, domain.ErrMalformed) holds for validation failures
//	}
//
// A minimal YAML definition:
//
//	name: div3
//	states: [q0, q1, q2]
//	sigma: ["0", "1"]
//	start: q0
//	final: [q0]
//	transitions:
//	  - {from: q0, to: q0, on: "0"}
//	  - {from: q0, to: q1, on: "1"}
package schema
