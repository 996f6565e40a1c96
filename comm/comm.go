// Package comm 公共数据，不引用本工程下自己编写的库
package comm

const (
	// TagHitomi hitomi 图集
	TagHitomi = "hitomi"
)
