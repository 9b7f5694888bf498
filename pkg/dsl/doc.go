/*
Package dsl provides a fluent builder for skill catalogs.

It is the Go-code alternative to the YAML catalog format: useful for tests,
generated catalogs and IDE autocompletion.

Example usage:

	b := dsl.New()

	b.Add("mob_dash").
		Name("Dash").
		Tree(domain.TreeMobility).
		MaxRank(5).
		Stat(domain.StatAgility, 4)

	b.Add("mob_blink").
		Name("Blink").
		Tree(domain.TreeMobility).
		Keystone().
		Needs(5).
		Requires("mob_dash")

	cat, err := b.Build()
	// ... pass cat to skilltree.New(skilltree.WithCatalog(cat))
*/
package dsl
