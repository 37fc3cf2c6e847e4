/*
Package dsl provides a fluent builder for todo outlines.

It lets tests and callers assemble a domain.Item tree in code, with parent
links and sibling positions wired consistently, instead of describing it in a
YAML or JSON file.

Example usage:

	b := dsl.New()

	b.Add("inbox").Name("Inbox")

	groceries := b.Add("groceries").Under("inbox").Name("Groceries")
	groceries.Child("milk").Name("Milk").Done()
	groceries.Child("bread").Name("Bread").Tag("bakery")

	b.Add("call-mom").Under("inbox").Name("Call mom")

	root, err := b.Build()
	if err != nil {
		log.Fatal(err)
	}
	tree.Print(root, nil)
*/
package dsl
