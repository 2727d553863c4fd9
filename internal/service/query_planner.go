package service

import "fmt"

// 查询规划：纯函数，无副作用，相同输入恒产生相同查询。

// TopicQueries 为主题生成固定的3条检索查询
func TopicQueries(topic string) []string {
	return []string{
		fmt.Sprintf("%s comprehensive guide", topic),
		fmt.Sprintf("%s explanation", topic),
		fmt.Sprintf("what is %s definition", topic),
	}
}

// SubtopicQueries 为每个子主题生成固定的3条检索查询，按子主题名分键
func SubtopicQueries(topic string, subtopics []string) map[string][]string {
	queries := make(map[string][]string, len(subtopics))
	for _, subtopic := range subtopics {
		queries[subtopic] = []string{
			fmt.Sprintf("%s %s explanation", topic, subtopic),
			fmt.Sprintf("learn %s %s", subtopic, topic),
			fmt.Sprintf("%s %s guide", topic, subtopic),
		}
	}
	return queries
}
