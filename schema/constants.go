package schema

// Custom string types for type safety.
type (
	// Category represents one named ranking column of the primary leaderboard.
	Category string

	// Arena represents one independently ranked secondary leaderboard.
	Arena string

	// OutputMode represents the format of the output.
	OutputMode string

	// Theme represents the persisted UI color preference.
	Theme string
)

// All primary ranking categories.
const (
	CategoryOverall              Category = "overall"
	CategoryExpert               Category = "expert"
	CategoryHardPrompts          Category = "hardPrompts"
	CategoryCoding               Category = "coding"
	CategoryMath                 Category = "math"
	CategoryCreativeWriting      Category = "creativeWriting"
	CategoryInstructionFollowing Category = "instructionFollowing"
	CategoryLongerQuery          Category = "longerQuery"
)

// All arenas tracked by the dashboard.
const (
	TextArena      Arena = "text"
	VisionArena    Arena = "vision"
	TextToImage    Arena = "t2i"
	TextToVideo    Arena = "t2v"
	ImageEditArena Arena = "image_edit"
	WebDevArena    Arena = "webdev"
	SearchArena    Arena = "search"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All themes supported.
const (
	LightTheme Theme = "light" // default
	DarkTheme  Theme = "dark"
)

// OverviewFile is the primary leaderboard source file.
const OverviewFile = "arena_overview.csv"

// AllCategories lists the categories in display order.
var AllCategories = []Category{
	CategoryOverall,
	CategoryExpert,
	CategoryHardPrompts,
	CategoryCoding,
	CategoryMath,
	CategoryCreativeWriting,
	CategoryInstructionFollowing,
	CategoryLongerQuery,
}

// AllArenas lists the arenas in display order.
var AllArenas = []Arena{
	TextArena,
	VisionArena,
	TextToImage,
	TextToVideo,
	ImageEditArena,
	WebDevArena,
	SearchArena,
}

// CategoryColumns maps each category to its column name in the primary file.
var CategoryColumns = map[Category]string{
	CategoryOverall:              "overall",
	CategoryExpert:               "expert",
	CategoryHardPrompts:          "hard_prompts",
	CategoryCoding:               "coding",
	CategoryMath:                 "math",
	CategoryCreativeWriting:      "creative_writing",
	CategoryInstructionFollowing: "instruction_following",
	CategoryLongerQuery:          "longer_query",
}

// CategoryLabels maps each category to its display label.
var CategoryLabels = map[Category]string{
	CategoryOverall:              "Overall",
	CategoryExpert:               "Expert",
	CategoryHardPrompts:          "Hard Prompts",
	CategoryCoding:               "Coding",
	CategoryMath:                 "Math",
	CategoryCreativeWriting:      "Creative Writing",
	CategoryInstructionFollowing: "Instruction Following",
	CategoryLongerQuery:          "Longer Query",
}

// ArenaFiles maps each arena to its source file.
var ArenaFiles = map[Arena]string{
	TextArena:      "text_arena.csv",
	VisionArena:    "vision_arena.csv",
	TextToImage:    "text-to-image_arena.csv",
	TextToVideo:    "text-to-video_arena.csv",
	ImageEditArena: "image-edit_arena.csv",
	WebDevArena:    "webdev_arena.csv",
	SearchArena:    "search_arena.csv",
}

// ArenaLabels maps each arena to its display label.
var ArenaLabels = map[Arena]string{
	TextArena:      "Text",
	VisionArena:    "Vision",
	TextToImage:    "Text-to-Image",
	TextToVideo:    "Text-to-Video",
	ImageEditArena: "Image Edit",
	WebDevArena:    "WebDev",
	SearchArena:    "Search",
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidThemes lists all valid themes.
var ValidThemes = map[Theme]struct{}{
	LightTheme: {},
	DarkTheme:  {},
}

// ArenaLabel returns the display label for an arena, falling back to the raw id.
func ArenaLabel(a Arena) string {
	if label, ok := ArenaLabels[a]; ok {
		return label
	}
	return string(a)
}

// CategoryLabel returns the display label for a category, falling back to the raw id.
func CategoryLabel(c Category) string {
	if label, ok := CategoryLabels[c]; ok {
		return label
	}
	return string(c)
}
