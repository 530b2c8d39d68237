package constant

import "moody-be/internal/entity"

// MoodScore maps mood levels to the 1..5 scale used by the weekly chart.
var MoodScore = map[entity.MoodLevel]int{
	entity.MoodAwful: 1,
	entity.MoodBad:   2,
	entity.MoodOkay:  3,
	entity.MoodGood:  4,
	entity.MoodGreat: 5,
}

// MoodEmotionLabel maps mood levels to the emotion names shown in stats.
var MoodEmotionLabel = map[entity.MoodLevel]string{
	entity.MoodAwful: "Awful",
	entity.MoodBad:   "Sad",
	entity.MoodOkay:  "Calm",
	entity.MoodGood:  "Happy",
	entity.MoodGreat: "Great",
}

// MoodEmotionColor maps mood levels to the chart palette.
var MoodEmotionColor = map[entity.MoodLevel]string{
	entity.MoodGreat: "#F07033",
	entity.MoodGood:  "#F8A775",
	entity.MoodOkay:  "#9E9E9E",
	entity.MoodBad:   "#64B5F6",
	entity.MoodAwful: "#EF5350",
}
