package model

// DifficultyLevel 课程难度等级
type DifficultyLevel string

const (
	Beginner     DifficultyLevel = "beginner"
	Intermediate DifficultyLevel = "intermediate"
	Advanced     DifficultyLevel = "advanced"
)

func (d DifficultyLevel) Valid() bool {
	switch d {
	case Beginner, Intermediate, Advanced:
		return true
	}
	return false
}

// DifficultyProfile 由难度派生的提示词上下文，不落库
type DifficultyProfile struct {
	Tone     string
	Depth    string
	Examples string
	Length   string
}

var difficultyProfiles = map[DifficultyLevel]DifficultyProfile{
	Beginner: {
		Tone:     "simple, clear, and accessible",
		Depth:    "fundamental concepts with basic explanations",
		Examples: "real-world, relatable examples",
		Length:   "detailed but not overwhelming",
	},
	Intermediate: {
		Tone:     "moderately technical with balanced explanations",
		Depth:    "comprehensive coverage with some technical details",
		Examples: "practical applications and case studies",
		Length:   "thorough and well-structured",
	},
	Advanced: {
		Tone:     "technical and in-depth",
		Depth:    "complex concepts with detailed analysis",
		Examples: "sophisticated examples and research findings",
		Length:   "comprehensive and detailed",
	},
}

// ProfileFor 对枚举全覆盖，未知难度按 intermediate 处理
func ProfileFor(d DifficultyLevel) DifficultyProfile {
	if p, ok := difficultyProfiles[d]; ok {
		return p
	}
	return difficultyProfiles[Intermediate]
}

// LearningRequest 一次课程生成请求，接受后不可变
type LearningRequest struct {
	Topic      string          `json:"topic" binding:"required"`
	SubTopics  []string        `json:"subTopics" binding:"required"`
	Difficulty DifficultyLevel `json:"difficulty" binding:"required"`
	Language   string          `json:"language"`
}

// SearchResult 搜索引擎返回的单条结果
type SearchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// ResearchCorpus 检索得到的网页正文语料，按主题与子主题分键。
// 构建完成后只读；每个请求的子主题都有条目，允许为空。
type ResearchCorpus struct {
	TopicContent    map[string]string            `json:"topicContent"`
	SubtopicContent map[string]map[string]string `json:"subtopicContent"`
}

// TopicIntroduction 主题导学内容，每个任务恰好生成一次
type TopicIntroduction struct {
	Topic              string   `json:"topic"`
	Introduction       string   `json:"introduction"`
	Overview           string   `json:"overview"`
	LearningObjectives []string `json:"learning_objectives"`
	Prerequisites      []string `json:"prerequisites"`
	WordCount          int      `json:"word_count"`
}

// SubtopicContent 单个子主题的正文（markdown）
type SubtopicContent struct {
	Subtopic  string   `json:"subtopic"`
	Content   string   `json:"content"`
	Sources   []string `json:"sources"`
	WordCount int      `json:"word_count"`
	Read      bool     `json:"read"`
}

// LearningResult 课程生成的最终聚合结果
type LearningResult struct {
	Topic                   string            `json:"topic"`
	SubTopics               []string          `json:"sub_topics"`
	Difficulty              DifficultyLevel   `json:"difficulty"`
	Introduction            TopicIntroduction `json:"introduction"`
	SubtopicContents        []SubtopicContent `json:"subtopic_contents"`
	TotalWordCount          int               `json:"total_word_count"`
	EstimatedReadingMinutes int               `json:"estimated_reading_time"`
	CourseDesigned          bool              `json:"course_designed"`
}
