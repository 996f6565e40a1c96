package hitomi

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const longHash = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abc03f"

func TestFullPathFromHash(t *testing.T) {
	assert.Equal(t, "c/12/ab12c", FullPathFromHash("ab12c"))
	assert.Equal(t, "c/ab/abc", FullPathFromHash("abc"))
	assert.Equal(t, "f/03/"+longHash, FullPathFromHash(longHash))
	assert.Equal(t, "ab", FullPathFromHash("ab"))
	assert.Equal(t, "a", FullPathFromHash("a"))
	assert.Equal(t, "", FullPathFromHash(""))
}

func TestFullPathFromHashProperty(t *testing.T) {
	hash := "9f8e7d6c5b4a39281706f5e4d3c2b1a0"
	for n := 0; n <= len(hash); n++ {
		h := hash[:n]
		got := FullPathFromHash(h)
		if n < 3 {
			assert.Equal(t, h, got)
			continue
		}
		last := h[n-3:]
		assert.Equal(t, last[2:]+"/"+last[:2]+"/"+h, got)
		assert.True(t, strings.HasSuffix(got, "/"+h))
	}
}

func TestResolveURL(t *testing.T) {
	r := NewResolver("", 0)
	cases := []struct {
		name   string
		img    Image
		dir    string
		ext    string
		noWebp bool
		want   string
	}{
		{"webp", Image{Hash: "abc", HasWebp: true, Name: "page.jpg"}, "", "", false,
			"https://ab.hitomi.la/webp/c/ab/abc.webp"},
		{"no webp", Image{Hash: "abc", HasWebp: true, Name: "page.jpg"}, "", "", true,
			"https://ab.hitomi.la/images/c/ab/abc.jpg"},
		{"without webp", Image{Hash: longHash, Name: "001.png"}, "", "", false,
			"https://bb.hitomi.la/images/f/03/" + longHash + ".png"},
		{"three frontends", Image{Hash: "ff7a2", Name: "01.jpg"}, "", "", false,
			"https://cb.hitomi.la/images/2/7a/ff7a2.jpg"},
		{"two frontends", Image{Hash: "ff2f1", Name: "01.gif"}, "", "", false,
			"https://bb.hitomi.la/images/1/2f/ff2f1.gif"},
		{"override ext", Image{Hash: "abc", Name: "cover"}, "", "png", false,
			"https://ab.hitomi.la/images/c/ab/abc.png"},
		{"override dir", Image{Hash: "abc", Name: "page.jpg"}, "avif", "png", false,
			"https://ab.hitomi.la/avif/c/ab/abc.avif"},
		{"webp without hash", Image{HasWebp: true, Name: "page.jpg"}, "", "", false,
			"https://a.hitomi.la/images/.jpg"},
		{"short hash", Image{Hash: "ab", Name: "page.jpg"}, "", "", false,
			"https://a.hitomi.la/images/ab.jpg"},
		{"not hex", Image{Hash: "xyz", Name: "page.jpg"}, "", "", false,
			"https://a.hitomi.la/images/z/xy/xyz.jpg"},
		{"webp without extension", Image{Hash: "abc", HasWebp: true, Name: "cover"}, "", "", false,
			"https://ab.hitomi.la/webp/c/ab/abc.webp"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := r.ResolveURL(1, c.img, c.dir, c.ext, c.noWebp)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestResolveURLDomain(t *testing.T) {
	r := NewResolver("example.org", 3)
	got, err := r.ResolveURL(1, Image{Hash: "abc", HasWebp: true, Name: "page.jpg"}, "", "", false)
	require.NoError(t, err)
	assert.Equal(t, "https://ab.example.org/webp/c/ab/abc.webp", got)
}

func TestResolveURLNoExtension(t *testing.T) {
	r := NewResolver("", 0)
	for _, name := range []string{"cover", "cover.", ""} {
		_, err := r.ResolveURL(1, Image{Hash: "abc", Name: name}, "", "", false)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrNoExtension))

		var ue *URLConstructionError
		require.True(t, errors.As(err, &ue))
		assert.Equal(t, name, ue.Name)
	}
}
