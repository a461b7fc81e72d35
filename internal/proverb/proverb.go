// Package proverb holds the static mood-to-proverb table the service is built
// around. The five moods are a closed set; anything else resolves to Fallback.
package proverb

// Mood is a lookup key into the proverb table.
type Mood string

const (
	MoodJoy      Mood = "기쁨"
	MoodSadness  Mood = "슬픔"
	MoodLethargy Mood = "무기력함"
	MoodAnger    Mood = "분노"
	MoodAnxiety  Mood = "불안"
)

// Entry is one proverb record. Entries are created once at process start and
// never mutated.
type Entry struct {
	Verse   string `json:"verse" example:"잠언 17:22"`
	Content string `json:"content" example:"마음의 즐거움은 양약이라도 심령의 근심은 뼈를 마르게 하느니라."`
	Comment string `json:"comment" example:"그 기쁜 순간을 더욱 누리기를 기도합니다."`
}

// Fallback is returned for any mood outside the five known labels.
var Fallback = Entry{
	Verse:   "",
	Content: "해당 기분에 맞는 잠언을 찾지 못했습니다.",
	Comment: "기쁨, 슬픔, 무기력함, 분노, 불안 중 하나로 다시 시도해 주세요.",
}

var table = map[Mood]Entry{
	MoodJoy: {
		Verse:   "잠언 17:22",
		Content: "마음의 즐거움은 양약이라도 심령의 근심은 뼈를 마르게 하느니라.",
		Comment: "그 기쁜 순간을 더욱 누리기를 기도합니다.",
	},
	MoodSadness: {
		Verse:   "잠언 14:13",
		Content: "웃을 때에도 마음에 슬픔이 있고 즐거움의 끝에도 근심이 있느니라.",
		Comment: "슬픔 가운데에서도 다시 회복되기를 기도합니다.",
	},
	MoodLethargy: {
		Verse:   "잠언 10:4",
		Content: "손을 게으르게 놀리는 자는 가난하게 되고 손이 부지런한 자는 부하게 되느니라.",
		Comment: "무기력함은 곧 게으름으로 이어집니다. 게으름에서 벗어나 다시 부지런하게 되기를 기도합니다.",
	},
	MoodAnger: {
		Verse:   "잠언 14:29",
		Content: "노하기를 더디 하는 자는 크게 명철하여도 마음이 조급한 자는 어리석음을 나타내느니라.",
		Comment: "마음이 조급하여 쉽게 분노하는 것 만큼 자신의 어리석음을 드러내는 일이 없습니다. 크게 심호흡하고 분노를 식힐 수 있기를 기도합니다.",
	},
	MoodAnxiety: {
		Verse:   "잠언 12:25",
		Content: "근심이 사람의 마음에 있으면 그것으로 번뇌하게 되나 선한 말은 그것을 즐겁게 하느니라.",
		Comment: "불안할 때에도 선한 말들로 위로를 받아 불안이 조금은 사그라들기를 기도합니다.",
	},
}

// Moods lists the known labels in a fixed order.
func Moods() []Mood {
	return []Mood{MoodJoy, MoodSadness, MoodLethargy, MoodAnger, MoodAnxiety}
}

// Known reports whether m is one of the five labels.
func Known(m Mood) bool {
	_, ok := table[m]
	return ok
}

// Lookup returns the entry for m, or Fallback when m is not a known label.
// It never fails.
func Lookup(m Mood) Entry {
	if e, ok := table[m]; ok {
		return e
	}
	return Fallback
}
