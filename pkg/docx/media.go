package docx

import (
	"archive/zip"
	"bytes"
	"io"
	"path"
	"strings"

	"go.uber.org/zap"
)

const mediaPrefix = "word/media/"

// imageContentTypes maps file extensions to MIME types. Unknown
// extensions resolve to image/png, matching the magic-byte fallback.
var imageContentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".bmp":  "image/bmp",
	".tiff": "image/tiff",
	".svg":  "image/svg+xml",
}

func contentTypeByExtension(ext string) string {
	if ct, ok := imageContentTypes[strings.ToLower(ext)]; ok {
		return ct
	}
	return "image/png"
}

// sniffImageExtension synthesizes a file extension from the leading
// magic bytes. Unrecognized content defaults to .png.
func sniffImageExtension(data []byte) string {
	switch {
	case len(data) >= 4 && bytes.Equal(data[:4], []byte{0x89, 0x50, 0x4E, 0x47}):
		return ".png"
	case len(data) >= 3 && bytes.Equal(data[:3], []byte{0xFF, 0xD8, 0xFF}):
		return ".jpg"
	case len(data) >= 4 && bytes.Equal(data[:4], []byte("GIF8")):
		return ".gif"
	case len(data) >= 12 && bytes.Equal(data[:4], []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP")):
		return ".webp"
	case len(data) >= 2 && data[0] == 'B' && data[1] == 'M':
		return ".bmp"
	default:
		return ".png"
	}
}

// collectMediaAssets reads every entry under word/media/ into an Image.
// Entries that fail to read are skipped with a warning; the rest of the
// archive is still processed. Returns the assets in archive entry order
// plus a path-keyed lookup table used by per-run image resolution.
func collectMediaAssets(archive *zip.Reader, log *zap.Logger) ([]Image, map[string]Image) {
	all := []Image{}
	byPath := make(map[string]Image)

	for _, file := range archive.File {
		if !strings.HasPrefix(file.Name, mediaPrefix) || strings.HasSuffix(file.Name, "/") {
			continue
		}

		data, err := readZipFile(file)
		if err != nil {
			log.Warn("failed to read media entry",
				zap.String("path", file.Name),
				zap.Error(err))
			continue
		}

		filename := path.Base(file.Name)
		if path.Ext(filename) == "" {
			filename += sniffImageExtension(data)
		}

		img := Image{
			ID:          file.Name,
			Filename:    filename,
			Data:        data,
			ContentType: contentTypeByExtension(path.Ext(filename)),
		}
		all = append(all, img)
		byPath[file.Name] = img
	}

	return all, byPath
}

func readZipFile(file *zip.File) ([]byte, error) {
	reader, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	return io.ReadAll(reader)
}
