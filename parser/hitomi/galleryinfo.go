package hitomi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// 站点以 JS 脚本的形式返回图集信息，需要去掉变量声明才是 JSON
const jsPrefix = "var galleryinfo = "

// 标签的分类
const (
	CategoryFemale = "female"
	CategoryMale   = "male"
	CategoryTag    = "tag"
)

// ParseJSON 解析 galleries/{id}.js 的内容
func ParseJSON(data []byte) (*GalleryInfo, error) {
	data = bytes.TrimSpace(data)
	data = bytes.TrimPrefix(data, []byte(jsPrefix))
	data = bytes.TrimSuffix(data, []byte(";"))

	var raw RawGalleryInfo
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &GalleryInfoError{Field: "galleryinfo", Err: fmt.Errorf("%w：%w", ErrMalformed, err)}
	}
	return Parse(&raw)
}

// Parse 将原始图集信息规范化
//
// 原始数据中缺失的字段保持为 nil，不会以空字符串或 0 代替。files 的顺序原样保留
func Parse(raw *RawGalleryInfo) (*GalleryInfo, error) {
	if raw == nil {
		return nil, &GalleryInfoError{Field: "galleryinfo", Err: ErrMalformed}
	}

	id, err := parseID(raw.ID)
	if err != nil {
		return nil, &GalleryInfoError{Field: "id", Value: string(raw.ID), Err: err}
	}

	info := &GalleryInfo{
		GalleryID:         id,
		Title:             copyStr(raw.Title),
		JapaneseTitle:     copyStr(raw.JapaneseTitle),
		Language:          copyStr(raw.Language),
		LanguageLocalName: copyStr(raw.LanguageLocalName),
		Type:              copyStr(raw.Type),
		Date:              copyStr(raw.Date),
		Files:             make([]Image, 0, len(raw.Files)),
		Tags:              make([]Tag, 0, len(raw.Tags)),
	}

	for i, f := range raw.Files {
		img, err := parseFile(fmt.Sprintf("files[%d]", i), f)
		if err != nil {
			return nil, err
		}
		info.Files = append(info.Files, img)
	}

	for i, t := range raw.Tags {
		tag, err := classify(fmt.Sprintf("tags[%d]", i), t)
		if err != nil {
			return nil, err
		}
		info.Tags = append(info.Tags, tag)
	}

	return info, nil
}

// ClassifyTag 根据 male、female 标志给标签分类
func ClassifyTag(raw RawTag) (Tag, error) {
	return classify("tag", raw)
}

func classify(field string, raw RawTag) (Tag, error) {
	male, err := parseFlag(raw.Male)
	if err != nil {
		return Tag{}, &GalleryInfoError{Field: field + ".male", Value: string(raw.Male), Err: err}
	}
	female, err := parseFlag(raw.Female)
	if err != nil {
		return Tag{}, &GalleryInfoError{Field: field + ".female", Value: string(raw.Female), Err: err}
	}

	var category string
	switch {
	case !male && !female:
		category = CategoryTag
	case !male && female:
		category = CategoryFemale
	case male && !female:
		category = CategoryMale
	default:
		return Tag{}, &GalleryInfoError{Field: field, Value: raw.Tag, Err: ErrAmbiguousTag}
	}

	return Tag{Label: category + ":" + raw.Tag, URL: raw.URL}, nil
}

func parseFile(field string, f RawFile) (Image, error) {
	if f.Width < 0 || f.Height < 0 {
		return Image{}, &GalleryInfoError{Field: field, Value: fmt.Sprintf("%dx%d", f.Width, f.Height),
			Err: ErrMalformed}
	}
	webp, err := parseFlag(f.HasWebp)
	if err != nil {
		return Image{}, &GalleryInfoError{Field: field + ".haswebp", Value: string(f.HasWebp), Err: err}
	}
	return Image{Width: f.Width, Height: f.Height, Hash: f.Hash, HasWebp: webp, Name: f.Name}, nil
}

// parseID 图集 ID 可能是数字或数字字符串。缺失时返回 nil
func parseID(raw json.RawMessage) (*int, error) {
	v, err := decodeAny(raw)
	if err != nil {
		return nil, err
	}

	var s string
	switch t := v.(type) {
	case nil:
		return nil, nil
	case json.Number:
		s = t.String()
	case string:
		s = strings.TrimSpace(t)
	default:
		return nil, ErrMalformed
	}

	id, err := strconv.Atoi(s)
	if err != nil || id < 0 {
		return nil, ErrMalformed
	}
	return &id, nil
}

// parseFlag 标志可能是布尔值、数字或字符串（"1"、""）。缺失、null、空字符串都视为 false
func parseFlag(raw json.RawMessage) (bool, error) {
	v, err := decodeAny(raw)
	if err != nil {
		return false, err
	}

	switch t := v.(type) {
	case nil:
		return false, nil
	case bool:
		return t, nil
	case json.Number:
		n, err := t.Float64()
		if err != nil {
			return false, ErrMalformed
		}
		return n != 0, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return false, nil
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return false, ErrMalformed
		}
		return n != 0, nil
	}
	return false, ErrMalformed
}

func decodeAny(raw json.RawMessage) (interface{}, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, ErrMalformed
	}
	return v, nil
}

func copyStr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
