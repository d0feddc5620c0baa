package entities

// DetectionInput is everything a version source may look at.
type DetectionInput struct {
	Files    []string // candidate file paths found in the source directory
	Basename string   // upstream project name, derived from archive names when empty
	Version  string   // explicit override from the command line
}
