package service

import (
	"context"

	"learning_assistant_backend/internal/model"
)

// 能力端口：流水线只依赖以下抽象，具体实现通过构造函数显式注入。

// TextGenerator 文本生成能力（大模型）
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// WebSearcher 网络检索能力，允许合法地返回空结果
type WebSearcher interface {
	Search(ctx context.Context, query string, maxResults int) ([]model.SearchResult, error)
}

// ContentExtractor 网页正文抽取能力。
// 返回空字符串表示页面不可抽取，属于正常结果而非错误。
type ContentExtractor interface {
	Extract(ctx context.Context, url string) (string, error)
}
