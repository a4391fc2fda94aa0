package menu

// Demo returns the sample tree the navigator starts with when no definition
// file is given.
func Demo() *Navigation {
	return MustNavigation("root node",
		NewSmallText("SmallText", "first small text"),
		NewBigText("BigText", "BigTextHeader", "second big text content"),
		MustNavigation("MyDirectory",
			NewSmallText("Another SmallText", "first small text again"),
			NewBigText("My Big Story", "My Big Story",
				"And then the world was saved and lived happily ever after."),
		),
	)
}
