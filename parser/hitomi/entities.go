package hitomi

import "encoding/json"

// RawGalleryInfo 站点返回的原始图集信息（galleries/{id}.js）
//
// id 与各标志位在站点数据中可能是数字、字符串或布尔值，所以保留原始 JSON，交由 Parse 规范化
type RawGalleryInfo struct {
	ID                json.RawMessage `json:"id"`
	Title             *string         `json:"title"`
	JapaneseTitle     *string         `json:"japanese_title"`
	Language          *string         `json:"language"`
	LanguageLocalName *string         `json:"language_localname"`
	Type              *string         `json:"type"`
	Date              *string         `json:"date"`
	Files             []RawFile       `json:"files"`
	Tags              []RawTag        `json:"tags"`
}

// RawFile 原始的图片文件信息
type RawFile struct {
	Width   int             `json:"width"`
	Height  int             `json:"height"`
	Hash    string          `json:"hash"`
	HasWebp json.RawMessage `json:"haswebp"`
	Name    string          `json:"name"`
}

// RawTag 原始的标签
type RawTag struct {
	Tag    string          `json:"tag"`
	URL    string          `json:"url"`
	Male   json.RawMessage `json:"male"`
	Female json.RawMessage `json:"female"`
}

// Image 单张图片的描述，构造后不再修改
type Image struct {
	Width   int
	Height  int
	Hash    string // 图片内容的十六进制哈希，可能为空
	HasWebp bool
	Name    string // 原始文件名，如 "01.jpg"
}

// Tag 已分类的标签
type Tag struct {
	Label string // "<female|male|tag>:<标签名>"
	URL   string
}

// GalleryInfo 规范化后的图集信息
//
// 字段为 nil 表示原始数据中不存在该字段。Files 的顺序即页码顺序
type GalleryInfo struct {
	GalleryID         *int
	Title             *string
	JapaneseTitle     *string
	Language          *string
	LanguageLocalName *string
	Type              *string
	Date              *string
	Files             []Image
	Tags              []Tag
}

// Page 一页图片的下载链接和文件名
type Page struct {
	URL  string
	Name string
}
