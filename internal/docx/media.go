package docx

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"log"
	"regexp"
	"strings"
	"unicode"

	"github.com/disintegration/imaging"

	_ "image/gif" // decode registration for downscale probing
)

// Document relationship IDs 1-3 are taken by styles/settings/numbering.
// Image relationships start at 11; Word tolerates the gap and existing
// documents depend on the sequence, so it stays fixed.
const firstImageRelID = 11

var dataURIRe = regexp.MustCompile(`^data:image/([a-zA-Z0-9.+-]+);base64,(.+)$`)

// embeddedImage is one registered media part. Index is 1-based encounter
// order; it doubles as the drawing's docPr id.
type embeddedImage struct {
	Index    int
	Filename string
	Ext      string
	Data     []byte
	RelID    string
}

// mediaSet collects the images embedded during one export and is the sole
// authority on image relationship IDs. Renderers obtain IDs from here and
// only reference what was registered, so every r:embed in the body has a
// matching relationship entry by construction.
type mediaSet struct {
	maxWidth int
	images   []embeddedImage
}

func newMediaSet(maxWidth int) *mediaSet {
	return &mediaSet{maxWidth: maxWidth}
}

// Embed registers src as a media part if it is a base64 image data URI and
// returns the registered image. Remote URLs and relative paths are never
// fetched; they report ok=false and the caller degrades to a caption-only
// block. A payload that fails to decode is likewise skipped rather than
// producing a dangling media reference.
func (m *mediaSet) Embed(src string) (embeddedImage, bool) {
	match := dataURIRe.FindStringSubmatch(src)
	if match == nil {
		return embeddedImage{}, false
	}

	ext := normalizeExt(match[1])
	payload := stripSpace(match[2])
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		log.Printf("warning: skipping image with undecodable data URI: %v", err)
		return embeddedImage{}, false
	}

	if m.maxWidth > 0 {
		data = downscale(data, m.maxWidth)
	}

	img := embeddedImage{
		Index:    len(m.images) + 1,
		Ext:      ext,
		Data:     data,
		Filename: fmt.Sprintf("image%d.%s", len(m.images)+1, ext),
		RelID:    fmt.Sprintf("rId%d", firstImageRelID+len(m.images)),
	}
	m.images = append(m.images, img)
	return img, true
}

// Images returns the embedded images in registration order.
func (m *mediaSet) Images() []embeddedImage {
	return m.images
}

// Extensions returns the distinct file extensions in use, in first-seen
// order. The content-types manifest declares exactly this set.
func (m *mediaSet) Extensions() []string {
	seen := make(map[string]bool)
	var exts []string
	for _, img := range m.images {
		if !seen[img.Ext] {
			seen[img.Ext] = true
			exts = append(exts, img.Ext)
		}
	}
	return exts
}

// imageMIME maps a file extension to the content type declared for it.
func imageMIME(ext string) string {
	if ext == "jpg" {
		return "image/jpeg"
	}
	return "image/" + ext
}

// normalizeExt canonicalizes a data URI image subtype into a file extension.
func normalizeExt(subtype string) string {
	ext := strings.ToLower(subtype)
	ext = strings.TrimSuffix(ext, "+xml")
	if ext == "jpeg" {
		return "jpg"
	}
	return ext
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// downscale resizes a raster image to at most maxWidth pixels wide,
// re-encoding in its original format. Images that fail to decode, are
// already narrow enough, or use a format we do not re-encode pass through
// untouched.
func downscale(data []byte, maxWidth int) []byte {
	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		log.Printf("warning: image decode failed, embedding as-is: %v", err)
		return data
	}
	if src.Bounds().Dx() <= maxWidth {
		return data
	}

	resized := imaging.Resize(src, maxWidth, 0, imaging.Lanczos)

	var buf bytes.Buffer
	switch format {
	case "jpeg":
		err = jpeg.Encode(&buf, resized, &jpeg.Options{Quality: 85})
	case "png":
		err = png.Encode(&buf, resized)
	default:
		return data
	}
	if err != nil {
		log.Printf("warning: image re-encode failed, embedding as-is: %v", err)
		return data
	}
	return buf.Bytes()
}
