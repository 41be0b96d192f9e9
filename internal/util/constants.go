package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

// 完成记录的默认回看窗口（天），用于热力图渲染
const DefaultEntryWindowDays = 30
