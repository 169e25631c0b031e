package types

// DefaultTitle is the heading printed above the meal plan table.
const DefaultTitle = "7-DAY MEAL PLAN WITH FRUITS"

// RenderConfig holds settings for the PDF renderer.
type RenderConfig struct {
	// Title is the centered heading above the table (default DefaultTitle).
	Title string `json:"title" yaml:"title"`

	// Compress enables stream compression in the written PDF (default true).
	Compress bool `json:"compress" yaml:"compress"`
}

// ConvertConfig holds settings for a single text-to-PDF run.
type ConvertConfig struct {
	RenderConfig `yaml:",inline"`

	// InputPath is the meal plan text file (default "meal_plan.html").
	InputPath string `json:"input" yaml:"input"`

	// OutputPath is the PDF file to write (default "meal_plan.pdf").
	OutputPath string `json:"output" yaml:"output"`
}

// ArchiveConfig holds settings for the plan archive.
type ArchiveConfig struct {
	// Dir is the directory containing mealplans.db (default "archive").
	Dir string `json:"archive_dir" yaml:"archive_dir"`
}
