package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"learning_assistant_backend/internal/model"
	"learning_assistant_backend/pkg/logger"

	"go.uber.org/zap"
)

// ContentGeneratorService 负责课程结构设计与分阶段的正文生成。
// 课程设计失败永远回退到用户子主题；导学或子主题正文生成失败则是致命错误。
type ContentGeneratorService struct {
	generator TextGenerator
}

func NewContentGeneratorService(generator TextGenerator) *ContentGeneratorService {
	return &ContentGeneratorService{generator: generator}
}

const (
	maxDesignedSubtopics = 8
	minUsableLineLen     = 4

	topicExcerptChars         = 1000
	subtopicOverviewChars     = 400
	topicExcerptForSubtopic   = 500
	subtopicExcerptForContent = 1500
)

var (
	numberingRe = regexp.MustCompile(`^\d+\.?\s*`)
	bulletRe    = regexp.MustCompile(`^[-•*]\s*`)
)

// DesignCourseStructure 让模型把用户子主题重排为渐进式课程结构。
// 任何失败（调用出错、结果无可用行）都回退到原始列表并返回 false，
// 不会向上抛错：课程设计失败绝不能导致任务失败。
func (s *ContentGeneratorService) DesignCourseStructure(ctx context.Context, topic string, userSubtopics []string, difficulty model.DifficultyLevel, language string) ([]string, bool) {
	profile := model.ProfileFor(difficulty)

	prompt := fmt.Sprintf(`You are an expert course designer. Design an optimal learning course structure for the topic "%s" at %s level in %s.

User provided these subtopics: %s

Difficulty Context:
- Level: %s
- Tone: %s
- Depth: %s

Your task:
1. Analyze the user's subtopics
2. Design a logical, progressive course structure
3. Ensure subtopics build upon each other
4. Make them appropriate for %s level learners
5. Keep the number of subtopics between 3-8 for optimal learning

Provide ONLY the subtopic names, one per line, in the optimal learning order.
Do not include numbers, bullets, or explanations - just the subtopic names.`,
		topic, difficulty, language,
		strings.Join(userSubtopics, ", "),
		difficulty, profile.Tone, profile.Depth,
		difficulty)

	response, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		logger.Log.Warn("course design failed, using user subtopics",
			zap.String("topic", topic),
			zap.Error(err))
		return userSubtopics, false
	}

	designed := parseDesignedSubtopics(response)
	if len(designed) == 0 {
		logger.Log.Warn("course design produced no usable subtopics, using user subtopics",
			zap.String("topic", topic))
		return userSubtopics, false
	}

	return designed, true
}

// parseDesignedSubtopics 按行清洗模型输出：去编号、去列表符号、
// 丢弃空行和过短行，上限8条
func parseDesignedSubtopics(response string) []string {
	var designed []string
	for _, line := range strings.Split(strings.TrimSpace(response), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || len(line) < minUsableLineLen {
			continue
		}
		clean := numberingRe.ReplaceAllString(line, "")
		clean = bulletRe.ReplaceAllString(clean, "")
		clean = strings.TrimSpace(clean)
		if clean == "" {
			continue
		}
		designed = append(designed, clean)
		if len(designed) == maxDesignedSubtopics {
			break
		}
	}
	return designed
}

// ComposeIntroduction 生成主题导学内容。
// 必须先于任何子主题正文生成完成——子主题提示词依赖这里解析出的学习目标。
// 调用失败是致命错误，没有降级路径。
func (s *ContentGeneratorService) ComposeIntroduction(ctx context.Context, topic string, subtopics []string, difficulty model.DifficultyLevel, corpus *model.ResearchCorpus, language string) (*model.TopicIntroduction, error) {
	profile := model.ProfileFor(difficulty)
	researchContext := buildIntroductionContext(corpus)

	prompt := fmt.Sprintf(`Create a comprehensive introduction for the topic "%s" at %s level in %s.

Difficulty Context:
- Tone: %s
- Depth: %s
- Examples: %s

Subtopics to be covered: %s

Research Context (use as reference):
%s

Generate content with the following structure:
1. INTRODUCTION (300-400 words): Engaging introduction explaining what the topic is and why it's important
2. OVERVIEW (400-500 words): Comprehensive overview covering key concepts and scope
3. LEARNING_OBJECTIVES (5-7 bullet points): What learners will achieve
4. PREREQUISITES (3-5 bullet points): What learners should know beforehand

Format your response as:
INTRODUCTION:
[introduction content]

OVERVIEW:
[overview content]

LEARNING_OBJECTIVES:
• [objective 1]
• [objective 2]
...

PREREQUISITES:
• [prerequisite 1]
• [prerequisite 2]
...

Make the content educational, engaging, and appropriate for %s level learners.
Target total length: 800-1000 words.
For any table creation, use markdown format.`,
		topic, difficulty, language,
		profile.Tone, profile.Depth, profile.Examples,
		strings.Join(subtopics, ", "),
		researchContext,
		difficulty)

	response, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate topic introduction: %w", err)
	}

	sections := parseIntroductionSections(response)

	return &model.TopicIntroduction{
		Topic:              topic,
		Introduction:       sections.introduction,
		Overview:           sections.overview,
		LearningObjectives: sections.objectives,
		Prerequisites:      sections.prerequisites,
		WordCount:          len(strings.Fields(response)),
	}, nil
}

// ComposeSubtopic 生成单个子主题的markdown正文。
// 提示词中嵌入难度上下文、课程学习目标和截断后的语料摘录；
// 单个子主题失败即任务失败，不会产出部分文档。
func (s *ContentGeneratorService) ComposeSubtopic(ctx context.Context, topic, subtopic string, difficulty model.DifficultyLevel, corpus *model.ResearchCorpus, learningObjectives []string, language string) (*model.SubtopicContent, error) {
	profile := model.ProfileFor(difficulty)

	relevantContent := buildSubtopicContext(corpus, subtopic)

	objectivesContext := ""
	if len(learningObjectives) > 0 {
		var b strings.Builder
		b.WriteString("\nCourse Learning Objectives (ensure your content aligns with these):\n")
		for _, obj := range learningObjectives {
			b.WriteString("• " + obj + "\n")
		}
		objectivesContext = b.String()
	}

	prompt := fmt.Sprintf(`Create comprehensive educational content about "%s" as part of the main topic "%s" at %s level in %s.

Difficulty Context:
- Tone: %s
- Depth: %s
- Examples: %s
- Length: %s
%s
Research Context (use as reference):
%s

IMPORTANT FORMATTING REQUIREMENTS:
- Use proper Markdown formatting throughout
- Include clear headings (# ## ###) to structure content
- Add proper line breaks between sections and paragraphs
- Use bullet points (-) or numbered lists (1.) where appropriate
- Format code examples using code blocks with a language tag
- Create tables using Markdown table syntax (| | |)
- Use **bold** and *italic* text for emphasis

Create well-structured content that includes:
1. Clear explanation of the subtopic (use headings)
2. Key concepts and definitions (use subheadings and formatting)
3. Practical examples and applications (use code blocks if applicable)
4. Step-by-step explanations where applicable (use numbered lists)
5. Common misconceptions or pitfalls (use bullet points)
6. Connection to the main topic and other subtopics
7. How this subtopic contributes to achieving the overall learning objectives

Requirements:
- Minimum 600-700 words (approximately 1 page)
- Educational and engaging writing style
- Appropriate for %s level
- Align content with the course learning objectives

Focus on providing value and deep understanding of "%s" within the context of "%s".`,
		subtopic, topic, difficulty, language,
		profile.Tone, profile.Depth, profile.Examples, profile.Length,
		objectivesContext,
		relevantContent,
		difficulty,
		subtopic, topic)

	response, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate content for subtopic %q: %w", subtopic, err)
	}

	sources := make([]string, 0)
	if corpus != nil {
		for u := range corpus.SubtopicContent[subtopic] {
			sources = append(sources, u)
		}
	}

	return &model.SubtopicContent{
		Subtopic:  subtopic,
		Content:   response,
		Sources:   sources,
		WordCount: len(strings.Fields(response)),
	}, nil
}

// buildIntroductionContext 汇总主题语料和少量子主题语料作为导学的参考上下文
func buildIntroductionContext(corpus *model.ResearchCorpus) string {
	if corpus == nil {
		return ""
	}

	var b strings.Builder
	for _, content := range corpus.TopicContent {
		b.WriteString("Source content: " + truncateChars(content, topicExcerptChars) + "...\n")
	}

	wroteHeader := false
	for _, byURL := range corpus.SubtopicContent {
		for _, content := range byURL {
			if !wroteHeader {
				b.WriteString("Subtopic source content:\n")
				wroteHeader = true
			}
			b.WriteString("Source content: " + truncateChars(content, subtopicOverviewChars) + "...\n")
		}
	}

	return b.String()
}

// buildSubtopicContext 汇总主题级摘录和该子主题自己的语料
func buildSubtopicContext(corpus *model.ResearchCorpus, subtopic string) string {
	var b strings.Builder
	b.WriteString("Topic Source Content:\n")
	if corpus != nil {
		for _, content := range corpus.TopicContent {
			b.WriteString("Source: " + truncateChars(content, topicExcerptForSubtopic) + "...\n")
		}

		if byURL := corpus.SubtopicContent[subtopic]; len(byURL) > 0 {
			b.WriteString("Subtopic Specific Content:\n")
			for _, content := range byURL {
				b.WriteString("Source: " + truncateChars(content, subtopicExcerptForContent) + "...\n")
			}
		}
	}
	return b.String()
}

func truncateChars(s string, limit int) string {
	if len(s) > limit {
		return s[:limit]
	}
	return s
}

type introductionSections struct {
	introduction  string
	overview      string
	objectives    []string
	prerequisites []string
}

var (
	introRe      = regexp.MustCompile(`(?is)INTRODUCTION:\s*(.*?)(?:OVERVIEW:|$)`)
	overviewRe   = regexp.MustCompile(`(?is)OVERVIEW:\s*(.*?)(?:LEARNING_OBJECTIVES:|$)`)
	objectivesRe = regexp.MustCompile(`(?is)LEARNING_OBJECTIVES:\s*(.*?)(?:PREREQUISITES:|$)`)
	prereqRe     = regexp.MustCompile(`(?is)PREREQUISITES:\s*(.*)$`)
)

// parseIntroductionSections 容错解析四段式结构化输出：
// 每段从标签（大小写不敏感）延伸到下一个标签或文本末尾，
// 缺失的标签不报错，对应字段留空。
func parseIntroductionSections(content string) introductionSections {
	sections := introductionSections{
		objectives:    []string{},
		prerequisites: []string{},
	}

	if m := introRe.FindStringSubmatch(content); m != nil {
		sections.introduction = strings.TrimSpace(m[1])
	}
	if m := overviewRe.FindStringSubmatch(content); m != nil {
		sections.overview = strings.TrimSpace(m[1])
	}
	if m := objectivesRe.FindStringSubmatch(content); m != nil {
		sections.objectives = splitBulletLines(m[1])
	}
	if m := prereqRe.FindStringSubmatch(content); m != nil {
		sections.prerequisites = splitBulletLines(m[1])
	}

	return sections
}

// splitBulletLines 按行拆分，剥离列表符号，丢弃空行
func splitBulletLines(text string) []string {
	items := []string{}
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimSpace(strings.TrimLeft(line, "•-*"))
		if line == "" {
			continue
		}
		items = append(items, line)
	}
	return items
}
