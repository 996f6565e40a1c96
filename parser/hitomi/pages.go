package hitomi

// BuildPages 按页码顺序生成图集中每页图片的链接
//
// 任一页出错时返回错误，不会返回不完整的列表
func (r *Resolver) BuildPages(info *GalleryInfo, noWebp bool) ([]Page, error) {
	if info == nil || info.GalleryID == nil {
		return nil, &GalleryInfoError{Field: "id", Err: ErrNoGalleryID}
	}

	pages := make([]Page, len(info.Files))
	for i, img := range info.Files {
		u, err := r.ResolveURL(*info.GalleryID, img, "", "", noWebp)
		if err != nil {
			return nil, err
		}
		pages[i] = Page{URL: u, Name: img.Name}
	}
	return pages, nil
}
