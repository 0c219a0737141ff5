package catalog

// Default returns the curated built-in catalog.
func Default() *Catalog {
	c, err := New(map[Category][]Recommendation{
		Mystery: {
			{ID: 1, Title: "The Maltese Falcon"},
			{ID: 2, Title: "Murder on the Orient Express"},
			{ID: 3, Title: "The Hound of the Baskervilles"},
		},
		ScienceFiction: {
			{ID: 4, Title: "The Hitchhiker's Guide to the Galaxy"},
			{ID: 5, Title: "Ender's Game"},
			{ID: 6, Title: "The Dune Chronicles"},
		},
		SelfHelp: {
			{ID: 7, Title: "The 7 Habits of Highly Effective People"},
			{ID: 8, Title: "How to Win Friends and Influence People"},
			{ID: 9, Title: "Man's Search for Meaning"},
		},
	})
	if err != nil {
		panic("catalog: built-in data is invalid: " + err.Error())
	}
	return c
}
