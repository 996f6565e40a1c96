package hitomi

import (
	"errors"
	"fmt"
)

var (
	// ErrAmbiguousTag 标签同时被标记为 male 和 female
	ErrAmbiguousTag = errors.New("标签同时标记为 male 和 female")
	// ErrMalformed 字段的格式无法识别
	ErrMalformed = errors.New("字段格式错误")
	// ErrNoExtension 文件名中没有扩展名，且没有指定扩展名
	ErrNoExtension = errors.New("无法确定扩展名")
	// ErrNoGalleryID 图集信息中缺少 ID
	ErrNoGalleryID = errors.New("缺少图集 ID")
)

// GalleryInfoError 解析图集信息出错
type GalleryInfoError struct {
	Field string // 出错的字段，如 "id"、"tags[3].male"
	Value string // 原始值，可空
	Err   error
}

func (e *GalleryInfoError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("解析图集信息的字段'%s'出错：%s", e.Field, e.Err)
	}
	return fmt.Sprintf("解析图集信息的字段'%s'(%s)出错：%s", e.Field, e.Value, e.Err)
}

func (e *GalleryInfoError) Unwrap() error { return e.Err }

// URLConstructionError 生成图片链接出错
type URLConstructionError struct {
	Name string // 图片的文件名
	Err  error
}

func (e *URLConstructionError) Error() string {
	return fmt.Sprintf("生成图片'%s'的链接出错：%s", e.Name, e.Err)
}

func (e *URLConstructionError) Unwrap() error { return e.Err }
