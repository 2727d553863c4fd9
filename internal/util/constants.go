package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

const (
	// 阅读速度估算基准（词/分钟）
	WordsPerMinute = 200

	// 默认生成语言
	DefaultLanguage = "english"
)
