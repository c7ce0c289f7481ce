/*
Package dsl provides a fluent Go builder for automata, as an alternative to
YAML or JSON definition files.

Example usage:

	b := dsl.New("div3").Sigma('0', '1')

	b.Add("q0").Start().Final().
		On('0', "q0").
		On('1', "q1")
	b.Add("q1").
		On('0', "q2").
		On('1', "q0")
	b.Add("q2").
		On('0', "q1").
		On('1', "q2")

	d, err := b.Build()

Build runs the same validation as definition files, so forward references to
states added later are fine.
*/
package dsl
