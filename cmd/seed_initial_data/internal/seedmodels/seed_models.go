package seedmodels

// SeedQuestion defines a question item in the JSON seed file.
type SeedQuestion struct {
	Title  string `json:"title"`
	Answer string `json:"answer"`
}

// SeedTheme defines a theme and its questions in display order.
type SeedTheme struct {
	Name      string         `json:"theme_name"`
	Questions []SeedQuestion `json:"questions"`
}

// SeedBank is the root of the seed file. Themes are created in file order.
type SeedBank struct {
	Themes   []SeedTheme    `json:"themes"`
	Unthemed []SeedQuestion `json:"unthemed"`
}
