package convert

import (
	"archive/zip"
	"bytes"
	"image"
	"image/png"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))))
	return buf.Bytes()
}

func deckParts(t *testing.T, d *deck) map[string]string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, d.write(&buf))

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	parts := map[string]string{}
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		rc.Close()
		parts[f.Name] = string(data)
	}
	return parts
}

func TestDeckWritesAllParts(t *testing.T) {
	d := newDeck(612, 792)
	d.addSlide(testPNG(t))
	d.addSlide(testPNG(t))

	parts := deckParts(t, d)

	for _, name := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"ppt/presentation.xml",
		"ppt/_rels/presentation.xml.rels",
		"ppt/slideMasters/slideMaster1.xml",
		"ppt/slideLayouts/slideLayout1.xml",
		"ppt/theme/theme1.xml",
		"ppt/slides/slide1.xml",
		"ppt/slides/slide2.xml",
		"ppt/slides/_rels/slide1.xml.rels",
		"ppt/slides/_rels/slide2.xml.rels",
		"ppt/media/image1.png",
		"ppt/media/image2.png",
	} {
		assert.Contains(t, parts, name)
	}
}

func TestDeckSlideSizeInEMU(t *testing.T) {
	d := newDeck(612, 792)
	d.addSlide(testPNG(t))

	parts := deckParts(t, d)
	pres := parts["ppt/presentation.xml"]
	assert.Contains(t, pres, `cx="7772400"`, "612pt in EMU")
	assert.Contains(t, pres, `cy="10058400"`, "792pt in EMU")
}

func TestDeckSlideReferencesItsImage(t *testing.T) {
	d := newDeck(612, 792)
	d.addSlide(testPNG(t))
	d.addSlide(testPNG(t))

	parts := deckParts(t, d)
	assert.Contains(t, parts["ppt/slides/_rels/slide2.xml.rels"], "image2.png")
	assert.Contains(t, parts["ppt/slides/slide1.xml"], `r:embed="rId2"`)
}

func TestDeckContentTypesListsEverySlide(t *testing.T) {
	d := newDeck(612, 792)
	d.addSlide(testPNG(t))
	d.addSlide(testPNG(t))
	d.addSlide(testPNG(t))

	parts := deckParts(t, d)
	ct := parts["[Content_Types].xml"]
	assert.Equal(t, 3, strings.Count(ct, "presentationml.slide+xml"))
}

func TestDeckPresentationListsSlidesInOrder(t *testing.T) {
	d := newDeck(612, 792)
	d.addSlide(testPNG(t))
	d.addSlide(testPNG(t))

	parts := deckParts(t, d)
	pres := parts["ppt/presentation.xml"]
	first := strings.Index(pres, `r:id="rId2"`)
	second := strings.Index(pres, `r:id="rId3"`)
	require.GreaterOrEqual(t, first, 0)
	require.GreaterOrEqual(t, second, 0)
	assert.Less(t, first, second)
}
