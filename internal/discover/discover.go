// Package discover finds the image files a review session walks through.
// Discovery is bounded: every root contributes at most rootBudget images,
// so pointing the tool at a huge tree cannot produce an unreviewable
// session.
package discover

import (
	"io"
	"net/http"
	"os"
	"path/filepath"

	"cull/internal/log"

	"github.com/gobwas/glob"
)

// rootBudget caps how many images a single root directory may contribute.
const rootBudget = 500

// Image extensions are matched lowercase-exact: ".PNG" is skipped even
// though its contents would sniff as a PNG. The extension gate is
// deliberately the stricter of the two checks.
var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// Options controls a discovery run.
type Options struct {
	Recurse bool     // Descend past the first level below each root
	Exclude []string // Glob patterns for paths to skip entirely
}

// Find walks the given roots and returns the image paths to review, in
// walk order. Each root has an independent budget; unreadable files and
// directories are skipped without failing the run.
func Find(roots []string, opts Options) []string {
	matchers := compileExcludes(opts.Exclude)

	var images []string
	for _, root := range roots {
		found, _ := walk(root, opts.Recurse, true, rootBudget, matchers)
		log.LogWithFields(
			log.F("root", root),
			log.F("found", len(found)),
		).Debug("Discovered images under root")
		images = append(images, found...)
	}
	return images
}

// walk collects images under dir. isRoot marks the top of a root: its
// immediate subdirectories are always entered one level deep, deeper
// levels only when recurse is set. The remaining budget is threaded
// through and returned so sibling subtrees share one per-root cap.
func walk(dir string, recurse, isRoot bool, budget int, exclude []glob.Glob) ([]string, int) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.LogWithFields(log.F("directory", dir), log.F("error", err)).Debug("Skipping unreadable directory")
		return nil, budget
	}

	var images []string
	for _, entry := range entries {
		if budget <= 0 {
			break
		}

		path := filepath.Join(dir, entry.Name())
		if matchesAny(path, exclude) {
			continue
		}

		if entry.IsDir() {
			if isRoot || recurse {
				var found []string
				found, budget = walk(path, recurse, false, budget, exclude)
				images = append(images, found...)
			}
			continue
		}

		if IsImage(path) {
			images = append(images, path)
			budget--
		}
	}
	return images, budget
}

// IsImage reports whether path is a reviewable image. The extension must
// be one of .jpg/.jpeg/.png, and the first 512 bytes must sniff as JPEG
// or PNG content. Files that cannot be opened or read are not images.
func IsImage(path string) bool {
	if !imageExts[filepath.Ext(path)] {
		return false
	}

	file, err := os.Open(path)
	if err != nil {
		log.LogWithFields(log.F("file", path), log.F("error", err)).Debug("Skipping unreadable file")
		return false
	}
	defer file.Close()

	// Read first 512 bytes for content type detection
	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return false
	}
	buffer = buffer[:n]

	contentType := http.DetectContentType(buffer)
	return contentType == "image/jpeg" || contentType == "image/png"
}

func compileExcludes(patterns []string) []glob.Glob {
	matchers := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		matcher, err := glob.Compile(pattern)
		if err != nil {
			log.Warnf("Ignoring invalid exclude pattern %q: %v", pattern, err)
			continue
		}
		matchers = append(matchers, matcher)
	}
	return matchers
}

// matchesAny matches against the full path, so patterns can target
// directories ("**/cache/**") as well as file names ("*.thumb.png").
func matchesAny(path string, exclude []glob.Glob) bool {
	for _, matcher := range exclude {
		if matcher.Match(path) {
			return true
		}
	}
	return false
}
