package comm

// Album 向 worker 发送的图集
type Album struct {
	// 基础，必需
	Tag     string   `json:"tag"`     // 网站
	Caption string   `json:"caption"` // 标题
	Created int64    `json:"created"` // 创建时间
	ID      string   `json:"id"`      // 任务的 ID，即图集 ID
	URLs    []string `json:"urls"`    // 每页图片的链接，顺序即页码
	Names   []string `json:"names"`   // 每页图片的原始文件名，和 URLs 一一对应

	// 后续设置，可空
	Meta    *Meta             `json:"meta,omitempty"`     // 图集的描述，保存到本地时写入 info.yaml
	Header  map[string]string `json:"header,omitempty"`   // 下载文件的请求头，可空
	IsRetry bool              `json:"is_retry,omitempty"` // 该任务是否为重试（重试成功则要删除失败记录）
}

// Meta 图集的描述信息
type Meta struct {
	ID            int      `json:"id" yaml:"id"`
	Title         string   `json:"title,omitempty" yaml:"title,omitempty"`
	JapaneseTitle string   `json:"japanese_title,omitempty" yaml:"japanese_title,omitempty"`
	Language      string   `json:"language,omitempty" yaml:"language,omitempty"`
	Type          string   `json:"type,omitempty" yaml:"type,omitempty"`
	Date          string   `json:"date,omitempty" yaml:"date,omitempty"`
	Pages         int      `json:"pages" yaml:"pages"`
	Tags          []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}
